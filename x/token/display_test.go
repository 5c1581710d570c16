package token

import (
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]struct {
		amount   uint64
		decimals uint8
		want     string
	}{
		"no decimals": {amount: 1000, decimals: 0, want: "1000"},
		"fraction":    {amount: 1500, decimals: 3, want: "1.5"},
		"below one":   {amount: 7, decimals: 6, want: "0.000007"},
		"max value":   {amount: 18446744073709551615, decimals: 9, want: "18446744073.709551615"},
		"zero":        {amount: 0, decimals: 6, want: "0"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FormatAmount(tc.amount, tc.decimals)
			assert.Equal(t, tc.want, got)

			back, err := ParseAmount(got, tc.decimals)
			assert.Nil(t, err)
			assert.Equal(t, tc.amount, back)
		})
	}
}

func TestParseAmountRejects(t *testing.T) {
	cases := map[string]struct {
		value    string
		decimals uint8
	}{
		"too precise":  {value: "1.0001", decimals: 3},
		"negative":     {value: "-1", decimals: 3},
		"not a number": {value: "one", decimals: 3},
		"out of range": {value: "18446744073709551616", decimals: 0},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := ParseAmount(tc.value, tc.decimals)
			assert.IsErr(t, errors.ErrAmount, err)
		})
	}
}
