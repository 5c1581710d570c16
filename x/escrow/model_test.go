package escrow

import (
	"bytes"
	"context"
	"testing"

	"filippo.io/edwards25519"
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

func TestRecordAddress(t *testing.T) {
	maker := swaptest.NewCondition().Address()

	addr, bump, err := RecordAddress(maker, 7)
	assert.Nil(t, err)
	assert.Nil(t, addr.Validate())
	assert.Equal(t, true, isOffCurve(addr))
	assert.Equal(t, addr, RecordCondition(maker, 7, bump).Address())

	again, againBump, err := RecordAddress(maker, 7)
	assert.Nil(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, bump, againBump)

	other, _, err := RecordAddress(maker, 8)
	assert.Nil(t, err)
	if addr.Equals(other) {
		t.Fatal("seeds must not share a record")
	}
	other, _, err = RecordAddress(swaptest.NewCondition().Address(), 7)
	assert.Nil(t, err)
	if addr.Equals(other) {
		t.Fatal("makers must not share a record")
	}

	// every bump above the canonical one lands on the curve
	for b := 255; b > int(bump); b-- {
		if isOffCurve(RecordCondition(maker, 7, uint8(b)).Address()) {
			t.Fatalf("bump %d is off curve but %d was chosen", b, bump)
		}
	}
}

func TestIsOffCurve(t *testing.T) {
	point := edwards25519.NewGeneratorPoint().Bytes()
	assert.Equal(t, false, isOffCurve(point))
	pub := swaptest.NewKey().PublicKey().GetEd25519()
	assert.Equal(t, false, isOffCurve(pub))
}

func TestEscrowLayout(t *testing.T) {
	maker := swaptest.NewCondition().Address()
	rec := Escrow{
		Bump:          254,
		Seed:          0x0102030405060708,
		ReceiveAmount: 500,
		Maker:         maker,
		AssetA:        swaptest.NewCondition().Address(),
		AssetB:        swaptest.NewCondition().Address(),
	}
	raw, err := rec.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, RecordSize, len(raw))
	assert.Equal(t, 121, RecordSize)
	assert.Equal(t, discriminator, raw[:8])
	assert.Equal(t, byte(254), raw[8])
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, raw[9:17])
	assert.Equal(t, []byte{0xf4, 1, 0, 0, 0, 0, 0, 0}, raw[17:25])
	assert.Equal(t, []byte(maker), raw[25:57])

	var got Escrow
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, rec, got)

	cases := map[string][]byte{
		"truncated":     raw[:RecordSize-1],
		"trailing data": append(append([]byte{}, raw...), 0),
		"foreign tag":   append(bytes.Repeat([]byte{0}, 8), raw[8:]...),
		"empty":         nil,
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			var e Escrow
			assert.IsErr(t, errors.ErrModel, e.Unmarshal(bad))
		})
	}

	rec.Maker = maker[:20]
	_, err = rec.Marshal()
	assert.IsErr(t, errors.ErrInput, err)
}

func TestAuthenticate(t *testing.T) {
	maker := swaptest.NewCondition().Address()
	first := RecordCondition(maker, 1, 255)
	second := RecordCondition(maker, 2, 255)

	var auth Authenticate
	ctx := context.Background()
	assert.Equal(t, 0, len(auth.GetConditions(ctx)))
	assert.Equal(t, false, auth.HasAddress(ctx, first.Address()))

	one := withEscrow(ctx, first)
	two := withEscrow(one, second)
	assert.Equal(t, []tokenswap.Condition{first}, auth.GetConditions(one))
	assert.Equal(t, []tokenswap.Condition{first, second}, auth.GetConditions(two))
	assert.Equal(t, true, auth.HasAddress(two, first.Address()))
	assert.Equal(t, false, auth.HasAddress(one, second.Address()))
	assert.Equal(t, false, auth.HasAddress(two, maker))
}
