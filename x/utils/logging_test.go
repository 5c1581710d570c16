package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLoggingReportsPathAndError(t *testing.T) {
	var buf bytes.Buffer
	ctx := tokenswap.WithLogger(context.Background(), log.NewTMLogger(&buf))
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "escrow/take"}}

	h := &swaptest.Handler{DeliverErr: errors.ErrNotFound.New("escrow")}
	_, err := NewLogging().Deliver(ctx, store.MemStore(), tx, h)
	assert.Error(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "escrow/take"), out)
	assert.True(t, strings.Contains(out, "not found"), out)
}

func TestLoggingPassesResultThrough(t *testing.T) {
	h := &swaptest.Handler{CheckResult: tokenswap.CheckResult{Log: "fine"}}
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "escrow/cancel"}}

	res, err := NewLogging().Check(context.Background(), store.MemStore(), tx, h)
	assert.NoError(t, err)
	assert.Equal(t, "fine", res.Log)
	assert.Equal(t, 1, h.CheckCallCount())
}
