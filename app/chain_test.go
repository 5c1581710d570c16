package app

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderDecorator records its name on the way in.
type orderDecorator struct {
	name string
	seen *[]string
}

func (o orderDecorator) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Checker) (*tokenswap.CheckResult, error) {
	*o.seen = append(*o.seen, o.name)
	return next.Check(ctx, db, tx)
}

func (o orderDecorator) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Deliverer) (*tokenswap.DeliverResult, error) {
	*o.seen = append(*o.seen, o.name)
	return next.Deliver(ctx, db, tx)
}

func TestChainOrder(t *testing.T) {
	var seen []string
	var missing *swaptest.Decorator
	h := &swaptest.Handler{}

	stack := ChainDecorators(
		orderDecorator{"first", &seen},
		missing,
		nil,
	).Chain(
		orderDecorator{"second", &seen},
	).WithHandler(h)

	_, err := stack.Check(context.Background(), nil, nil)
	require.NoError(t, err)
	_, err = stack.Deliver(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "first", "second"}, seen)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestChainStopsOnError(t *testing.T) {
	outer := &swaptest.Decorator{}
	failing := &swaptest.Decorator{DeliverErr: errors.ErrUnauthorized}
	inner := &swaptest.Decorator{}
	h := &swaptest.Handler{}

	stack := ChainDecorators(outer, failing, inner).WithHandler(h)

	_, err := stack.Check(context.Background(), nil, nil)
	require.NoError(t, err)
	_, err = stack.Deliver(context.Background(), nil, nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	assert.Equal(t, 2, outer.CallCount())
	assert.Equal(t, 2, failing.CallCount())
	assert.Equal(t, 1, inner.CallCount())
	assert.Equal(t, 0, h.DeliverCallCount())
}

func TestChainRecoversPanic(t *testing.T) {
	counter := &swaptest.Decorator{}
	stack := ChainDecorators(
		counter,
		utils.NewRecovery(),
	).WithHandler(swaptest.PanicHandler{Msg: "boom"})

	_, err := stack.Check(context.Background(), nil, nil)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(context.Background(), nil, nil)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}
