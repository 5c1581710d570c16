package escrow

import (
	"context"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/x"
)

type contextKey int // local to the escrow module

const (
	contextKeyEscrow contextKey = iota
)

// withEscrow is a private method, as only this module
// can grant a record condition
func withEscrow(ctx tokenswap.Context, cond tokenswap.Condition) tokenswap.Context {
	val, _ := ctx.Value(contextKeyEscrow).([]tokenswap.Condition)
	granted := make([]tokenswap.Condition, 0, len(val)+1)
	granted = append(granted, val...)
	granted = append(granted, cond)
	return context.WithValue(ctx, contextKeyEscrow, granted)
}

// Authenticate reveals the record conditions granted to the context.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the record conditions granted to the context.
func (Authenticate) GetConditions(ctx tokenswap.Context) []tokenswap.Condition {
	val, _ := ctx.Value(contextKeyEscrow).([]tokenswap.Condition)
	return val
}

// HasAddress returns true if the record at addr was granted to the context.
func (a Authenticate) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
