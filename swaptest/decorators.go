package swaptest

import "github.com/iov-one/tokenswap"

// Decorator counts its calls and passes them on to the next handler,
// unless CheckErr or DeliverErr is set. A failing call is counted too.
type Decorator struct {
	calls
	CheckErr   error
	DeliverErr error
}

var _ tokenswap.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Checker) (*tokenswap.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Deliverer) (*tokenswap.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate wraps h with d.
func Decorate(h tokenswap.Handler, d tokenswap.Decorator) tokenswap.Handler {
	return decorated{next: h, dec: d}
}

type decorated struct {
	next tokenswap.Handler
	dec  tokenswap.Decorator
}

func (d decorated) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	return d.dec.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	return d.dec.Deliver(ctx, db, tx, d.next)
}
