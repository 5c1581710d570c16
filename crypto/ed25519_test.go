package crypto

import (
	"bytes"
	"testing"

	"github.com/iov-one/tokenswap/swaptest/assert"
	"golang.org/x/crypto/ed25519"
)

func TestVerifyOnlyMatchingSignature(t *testing.T) {
	maker := GenPrivKeyEd25519()
	taker := GenPrivKeyEd25519()

	makeSig, err := maker.Sign([]byte("make"))
	assert.Nil(t, err)
	takeSig, err := taker.Sign([]byte("take"))
	assert.Nil(t, err)

	cases := map[string]struct {
		key   *PublicKey
		msg   string
		sig   *Signature
		valid bool
	}{
		"maker signed make":        {maker.PublicKey(), "make", makeSig, true},
		"taker signed take":        {taker.PublicKey(), "take", takeSig, true},
		"signature of another key": {maker.PublicKey(), "take", takeSig, false},
		"signature of another msg": {maker.PublicKey(), "cancel", makeSig, false},
		"empty signature":          {maker.PublicKey(), "make", &Signature{}, false},
		"nil signature":            {maker.PublicKey(), "make", nil, false},
		"truncated signature":      {maker.PublicKey(), "make", &Signature{Ed25519: makeSig.Ed25519[:10]}, false},
		"empty key never verifies": {&PublicKey{}, "make", makeSig, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.key.Verify([]byte(tc.msg), tc.sig); got != tc.valid {
				t.Fatalf("want %v, got %v", tc.valid, got)
			}
		})
	}
}

func TestConditionAndAddress(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()

	ext, typ, data, err := pub.Condition().Parse()
	assert.Nil(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte(pub.Ed25519), data)
	assert.Equal(t, pub.Condition().Address(), pub.Address())
	assert.Nil(t, pub.Address().Validate())

	other := GenPrivKeyEd25519().PublicKey()
	if pub.Address().Equals(other.Address()) {
		t.Fatal("two keys share one address")
	}

	var empty PublicKey
	assert.Nil(t, empty.Condition())
	assert.Nil(t, empty.Address())
}

func TestPrivKeyEd25519FromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, ed25519.SeedSize)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.Ed25519, b.Ed25519)
	assert.Equal(t, []byte(ed25519.NewKeyFromSeed(seed)), a.GetEd25519())

	assert.Panics(t, func() { PrivKeyEd25519FromSeed(nil) })
	assert.Panics(t, func() { PrivKeyEd25519FromSeed(seed[:31]) })
	assert.Panics(t, func() { PrivKeyEd25519FromSeed(append(seed, 0)) })
}
