package tokenswap

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    Condition
		wantExt string
		wantTyp string
		wantErr *errors.Error
	}{
		"valid condition": {
			cond:    NewCondition("escrow", "pda", []byte{1, 2, 3}),
			wantExt: "escrow",
			wantTyp: "pda",
		},
		"data may contain a newline": {
			cond:    NewCondition("token", "assoc", []byte("a\nb")),
			wantExt: "token",
			wantTyp: "assoc",
		},
		"extension too short": {
			cond:    NewCondition("ab", "pda", []byte{1}),
			wantErr: errors.ErrInput,
		},
		"no data": {
			cond:    Condition("escrow/pda/"),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, _, err := tc.cond.Parse()
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %s, got %+v", tc.wantErr, err)
				}
				assert.Error(t, tc.cond.Validate())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExt, ext)
			assert.Equal(t, tc.wantTyp, typ)
			assert.NoError(t, tc.cond.Validate())
		})
	}
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("escrow", "pda", []byte{1})
	b := NewCondition("escrow", "pda", []byte{2})

	assert.Len(t, a.Address(), AddressLength)
	assert.True(t, a.Address().Equals(a.Address()))
	assert.False(t, a.Address().Equals(b.Address()))
	assert.NoError(t, a.Address().Validate())
	assert.Equal(t, "escrow/pda/01", a.String())
}

func TestAddressValidate(t *testing.T) {
	assert.True(t, errors.ErrEmpty.Is(Address(nil).Validate()))
	assert.True(t, errors.ErrInput.Is(Address(make([]byte, 20)).Validate()))
	assert.NoError(t, Address(make([]byte, AddressLength)).Validate())
}

func TestParseAddress(t *testing.T) {
	cond := NewCondition("escrow", "pda", []byte{0xca, 0xfe})
	addr := cond.Address()
	b32, err := addr.Bech32("swap")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b32, "swap1"))

	cases := map[string]struct {
		enc     string
		want    Address
		wantErr *errors.Error
	}{
		"plain hex": {
			enc:  hex.EncodeToString(addr),
			want: addr,
		},
		"prefixed hex": {
			enc:  "hex:" + hex.EncodeToString(addr),
			want: addr,
		},
		"bech32": {
			enc:  "bech32:" + b32,
			want: addr,
		},
		"condition": {
			enc:  "cond:escrow/pda/CAFE",
			want: addr,
		},
		"unknown format": {
			enc:     "base64:AAAA",
			wantErr: errors.ErrType,
		},
		"short hex": {
			enc:     "CAFE",
			wantErr: errors.ErrInput,
		},
		"broken bech32": {
			enc:     "bech32:swap1nope",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAddress(tc.enc)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %s, got %+v", tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := NewCondition("token", "mint", []byte{7}).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var back Address
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, addr, back)

	var empty Address
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)
}
