package sigs

import (
	"context"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx tokenswap.Context, signers []tokenswap.Condition) tokenswap.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate reveals the conditions of all keys that signed the
// transaction in this context.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx tokenswap.Context) []tokenswap.Condition {
	val, _ := ctx.Value(contextKeySigners).([]tokenswap.Condition)
	return val
}

// HasAddress returns true if addr signed the current Context.
func (a Authenticate) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
