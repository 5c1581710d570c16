package swaptest

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/crypto"
)

// NewKey returns a fresh ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a fresh key.
func NewCondition() tokenswap.Condition {
	return NewKey().PublicKey().Condition()
}
