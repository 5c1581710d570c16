/*
Package crypto holds the keys and signatures used to authorize
transactions. Only ed25519 is supported.

A public key is turned into a Condition in the "sigs" extension, and
its Address is the identity used by every other extension.
*/
package crypto

import (
	"github.com/iov-one/tokenswap"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() tokenswap.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

var _ PubKey = (*PublicKey)(nil)
var _ Signer = (*PrivateKey)(nil)

// Address is the address of the condition of this key, or nil for an
// empty key.
func (p *PublicKey) Address() tokenswap.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}
