package token

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/swaptest/assert"
	"github.com/iov-one/tokenswap/x/rent"
)

// fixture is a store with free storage, one funded authority and one mint
// with 6 decimals.
type fixture struct {
	db        store.CacheableKVStore
	auth      *swaptest.CtxAuth
	ctrl      BaseController
	authority tokenswap.Condition
	mint      tokenswap.Address
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	db := store.MemStore()
	authority := swaptest.NewCondition()

	wallets, err := json.Marshal([]rent.GenesisWallet{{Address: authority.Address(), Amount: 1000000}})
	assert.Nil(t, err)
	opts := tokenswap.Options{
		"conf":    json.RawMessage(`{"rent": {"per_byte": 1, "base": 10}}`),
		"wallets": wallets,
	}
	assert.Nil(t, rent.Initializer{}.FromGenesis(opts, db))

	auth := &swaptest.CtxAuth{Key: "token"}
	ctrl := NewController(auth, rent.NewController())
	mint, err := ctrl.CreateMint(db, authority.Address(), 1, 6)
	assert.Nil(t, err)

	return &fixture{db: db, auth: auth, ctrl: ctrl, authority: authority, mint: mint}
}

// signed returns a context authorizing given conditions.
func (f *fixture) signed(conds ...tokenswap.Condition) tokenswap.Context {
	return f.auth.SetConditions(context.Background(), conds...)
}

// fund mints amount to the associated account of owner.
func (f *fixture) fund(t testing.TB, owner tokenswap.Address, amount uint64) tokenswap.Address {
	t.Helper()
	assert.Nil(t, f.ctrl.MintTo(f.signed(f.authority), f.db, f.mint, owner, amount))
	return AccountAddress(owner, f.mint)
}

func (f *fixture) balance(t testing.TB, owner tokenswap.Address) uint64 {
	t.Helper()
	amount, err := f.ctrl.Balance(f.db, owner, f.mint)
	assert.Nil(t, err)
	return amount
}
