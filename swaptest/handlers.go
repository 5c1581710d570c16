package swaptest

import "github.com/iov-one/tokenswap"

// calls counts Check and Deliver invocations of a mock.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int { return c.check + c.deliver }

// Handler returns the configured result or error. When Key is set, every
// call first writes Key/Value to the store, so a test can see whether the
// writes of a failed call survive.
type Handler struct {
	calls

	CheckResult tokenswap.CheckResult
	CheckErr    error

	DeliverResult tokenswap.DeliverResult
	DeliverErr    error

	Key   []byte
	Value []byte
}

var _ tokenswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	h.check++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	h.deliver++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db tokenswap.KVStore) error {
	if h.Key == nil {
		return nil
	}
	return db.Set(h.Key, h.Value)
}

// PanicHandler panics with Msg on every call.
type PanicHandler struct {
	Msg string
}

var _ tokenswap.Handler = PanicHandler{}

func (p PanicHandler) Check(tokenswap.Context, tokenswap.KVStore, tokenswap.Tx) (*tokenswap.CheckResult, error) {
	panic(p.Msg)
}

func (p PanicHandler) Deliver(tokenswap.Context, tokenswap.KVStore, tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	panic(p.Msg)
}
