package utils_test

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/swaptest/assert"
	"github.com/iov-one/tokenswap/x/utils"
	"github.com/tendermint/tendermint/libs/common"
)

func TestActionTagger(t *testing.T) {
	tag := func(value string) common.KVPair {
		return tokenswap.Tag(utils.ActionKey, []byte(value))
	}

	cases := map[string]struct {
		handler *swaptest.Handler
		err     *errors.Error
		tags    []common.KVPair
	}{
		"simple call": {
			handler: &swaptest.Handler{},
			tags:    []common.KVPair{tag("escrow/make")},
		},
		"passes through error": {
			handler: &swaptest.Handler{DeliverErr: errors.ErrHuman},
			err:     errors.ErrHuman,
		},
		"tags are additive": {
			handler: &swaptest.Handler{
				DeliverResult: tokenswap.DeliverResult{Tags: []common.KVPair{tag("random")}},
			},
			tags: []common.KVPair{tag("random"), tag("escrow/make")},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			stack := swaptest.Decorate(tc.handler, utils.NewActionTagger())
			tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "escrow/make"}}

			res, err := stack.Deliver(context.Background(), store.MemStore(), tx)
			if tc.err != nil {
				assert.IsErr(t, tc.err, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, len(tc.tags), len(res.Tags))
			for i := range tc.tags {
				assert.Equal(t, string(tc.tags[i].Key), string(res.Tags[i].Key))
				assert.Equal(t, string(tc.tags[i].Value), string(res.Tags[i].Value))
			}
		})
	}
}

func TestActionTaggerRejectsBrokenTx(t *testing.T) {
	h := &swaptest.Handler{}
	stack := swaptest.Decorate(h, utils.NewActionTagger())
	tx := &swaptest.Tx{Err: errors.ErrInput}

	_, err := stack.Deliver(context.Background(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrInput, err)
	assert.Equal(t, 0, h.DeliverCallCount())
}
