/*
Package swaptest provides fixtures for testing handlers, decorators and
applications: mock authenticators, handlers, transactions, keys and a store
that fails on demand.
*/
package swaptest

import (
	"context"
	"fmt"

	"github.com/iov-one/tokenswap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer tokenswap.Condition
	// Signers represents an authentication of multiple signers.
	Signers []tokenswap.Condition
}

// GetConditions returns all configured signers.
func (a *Auth) GetConditions(tokenswap.Context) []tokenswap.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

// HasAddress returns true if any configured signer has given address.
func (a *Auth) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

// SetConditions returns a context authenticating given conditions.
func (a *CtxAuth) SetConditions(ctx tokenswap.Context, permissions ...tokenswap.Condition) tokenswap.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

// GetConditions returns the conditions stored in the context.
func (a *CtxAuth) GetConditions(ctx tokenswap.Context) []tokenswap.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]tokenswap.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []tokenswap.Condition got %T", ctx.Value(a.Key)))
	}
	return conds
}

// HasAddress returns true if a condition in the context has given address.
func (a *CtxAuth) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
