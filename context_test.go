package tokenswap

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextHeight(t *testing.T) {
	ctx := context.Background()
	_, ok := GetHeight(ctx)
	assert.False(t, ok)

	ctx = WithHeight(ctx, 12)
	h, ok := GetHeight(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(12), h)

	// a handler must not be able to move the block
	assert.Panics(t, func() { WithHeight(ctx, 13) })
}

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Panics(t, func() { GetChainID(ctx) })
	assert.Panics(t, func() { WithChainID(ctx, "bad chain id") })

	ctx = WithChainID(ctx, "swap-chain")
	assert.Equal(t, "swap-chain", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "other-chain") })
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	var out bytes.Buffer
	ctx = WithLogger(ctx, log.NewTMLogger(&out))
	ctx = WithHeight(ctx, 3)
	ctx = WithLogInfo(ctx, "path", "escrow/make")
	GetLogger(ctx).Info("delivered")

	assert.Contains(t, out.String(), "path=escrow/make")
	h, _ := GetHeight(ctx)
	assert.Equal(t, int64(3), h)
}

func TestChainID(t *testing.T) {
	cases := map[string]bool{
		"":                              false,
		"short":                         false,
		"swap-1":                        true,
		"Token_Swap-99":                 true,
		"semi;colon":                    false,
		"this-chain-id-is-way-too-long": false,
	}
	for id, valid := range cases {
		assert.Equal(t, valid, IsValidChainID(id), id)
	}
}
