package token

import (
	"math/big"

	"github.com/iov-one/tokenswap/errors"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a base unit amount in the precision of its mint,
// eg. 1500 with 3 decimals is "1.5".
func FormatAmount(amount uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals)).String()
}

// ParseAmount is the inverse of FormatAmount. It rejects values that
// cannot be represented in base units exactly.
func ParseAmount(s string, decimals uint8) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrAmount, err.Error())
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, errors.Wrap(errors.ErrAmount, "too many decimal places")
	}
	if scaled.Sign() < 0 {
		return 0, errors.Wrap(errors.ErrAmount, "negative amount")
	}
	v := scaled.BigInt()
	if !v.IsUint64() {
		return 0, errors.Wrap(errors.ErrAmount, "amount out of range")
	}
	return v.Uint64(), nil
}
