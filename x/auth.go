package x

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// Authenticator reveals which conditions a transaction fulfils. Handlers
// receive one in their constructor so the source of authority (signatures,
// keyless grants of an extension) can be combined freely.
type Authenticator interface {
	// GetConditions returns every condition fulfilled in this context.
	GetConditions(tokenswap.Context) []tokenswap.Condition
	// HasAddress checks if any fulfilled condition maps to this address.
	HasAddress(tokenswap.Context, tokenswap.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators, in the
// order the authenticators were chained.
func (m MultiAuth) GetConditions(ctx tokenswap.Context) []tokenswap.Condition {
	var res []tokenswap.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition if any, otherwise nil
func MainSigner(ctx tokenswap.Context, auth Authenticator) tokenswap.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// RequireAddress returns ErrUnauthorized unless the context fulfils a
// condition that maps to addr.
func RequireAddress(ctx tokenswap.Context, auth Authenticator, addr tokenswap.Address) error {
	if len(addr) == 0 || !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "missing signature of %s", addr)
	}
	return nil
}

// HasAllConditions returns true if all elements in required are
// also in context.
func HasAllConditions(ctx tokenswap.Context, auth Authenticator, required []tokenswap.Condition) bool {
	return HasNConditions(ctx, auth, required, len(required))
}

// HasNConditions returns true if at least n elements in requested are
// also in context.
func HasNConditions(ctx tokenswap.Context, auth Authenticator, requested []tokenswap.Condition, n int) bool {
	if n <= 0 {
		return true
	}
	granted := auth.GetConditions(ctx)
	for _, want := range requested {
		for _, got := range granted {
			if got.Equals(want) {
				n--
				break
			}
		}
		if n == 0 {
			return true
		}
	}
	return false
}
