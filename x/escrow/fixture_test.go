package escrow

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/swaptest/assert"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/rent"
	"github.com/iov-one/tokenswap/x/token"
	"github.com/iov-one/tokenswap/x/utils"
)

const (
	decimalsA = 6
	decimalsB = 9

	// initial native balance of every party
	wallet = 100000
)

// router collects the handlers registered by RegisterRoutes.
type router map[string]tokenswap.Handler

func (r router) Handle(path string, h tokenswap.Handler) {
	r[path] = h
}

// fixture holds two mints, a maker holding 1000 of asset A and a taker
// holding 500 of asset B. Storage costs base 10 plus 1 per byte.
type fixture struct {
	db     store.CacheableKVStore
	auth   *swaptest.CtxAuth
	tokens token.BaseController
	rent   rent.BaseController
	routes router

	authority tokenswap.Condition
	maker     tokenswap.Condition
	taker     tokenswap.Condition
	mintA     tokenswap.Address
	mintB     tokenswap.Address
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	db := store.MemStore()
	authority := swaptest.NewCondition()
	maker := swaptest.NewCondition()
	taker := swaptest.NewCondition()

	wallets, err := json.Marshal([]rent.GenesisWallet{
		{Address: authority.Address(), Amount: wallet},
		{Address: maker.Address(), Amount: wallet},
		{Address: taker.Address(), Amount: wallet},
	})
	assert.Nil(t, err)
	opts := tokenswap.Options{
		"conf":    json.RawMessage(`{"rent": {"per_byte": 1, "base": 10}}`),
		"wallets": wallets,
	}
	assert.Nil(t, rent.Initializer{}.FromGenesis(opts, db))

	auth := &swaptest.CtxAuth{Key: "escrow"}
	rc := rent.NewController()
	tokens := token.NewController(x.ChainAuth(auth, Authenticate{}), rc)

	mintA, err := tokens.CreateMint(db, authority.Address(), 1, decimalsA)
	assert.Nil(t, err)
	mintB, err := tokens.CreateMint(db, authority.Address(), 2, decimalsB)
	assert.Nil(t, err)
	routes := make(router)
	RegisterRoutes(routes, auth, tokens, rc)
	token.RegisterRoutes(routes, auth, tokens, NewRecipientGuard())

	f := &fixture{
		db:     db,
		auth:   auth,
		tokens: tokens,
		rent:   rc,
		routes: routes,

		authority: authority,
		maker:     maker,
		taker:     taker,
		mintA:     mintA,
		mintB:     mintB,
	}
	f.fund(maker.Address(), mintA, 1000)
	f.fund(taker.Address(), mintB, 500)
	return f
}

// fund issues amount of mint to owner. It panics on failure.
func (f *fixture) fund(owner, mint tokenswap.Address, amount uint64) {
	ctx := f.auth.SetConditions(context.Background(), f.authority)
	if err := f.tokens.MintTo(ctx, f.db, mint, owner, amount); err != nil {
		panic(err)
	}
}

// deliver runs msg signed by signer as one unit of execution on db.
func (f *fixture) deliver(db tokenswap.KVStore, signer tokenswap.Condition, msg tokenswap.Msg) (*tokenswap.DeliverResult, error) {
	h := swaptest.Decorate(f.routes[msg.Path()], utils.NewSavepoint().OnDeliver())
	ctx := f.auth.SetConditions(context.Background(), signer)
	return h.Deliver(ctx, db, &swaptest.Tx{Msg: msg})
}

func (f *fixture) check(signer tokenswap.Condition, msg tokenswap.Msg) error {
	ctx := f.auth.SetConditions(context.Background(), signer)
	_, err := f.routes[msg.Path()].Check(ctx, f.db, &swaptest.Tx{Msg: msg})
	return err
}

func (f *fixture) makeMsg(seed, deposit, receive uint64) *MakeMsg {
	return &MakeMsg{
		Maker:         f.maker.Address(),
		Seed:          seed,
		DepositAmount: deposit,
		ReceiveAmount: receive,
		AssetA:        f.mintA,
		AssetB:        f.mintB,
		DecimalsA:     decimalsA,
	}
}

func (f *fixture) takeMsg(addr tokenswap.Address) *TakeMsg {
	return &TakeMsg{
		Escrow:    addr,
		Maker:     f.maker.Address(),
		AssetA:    f.mintA,
		AssetB:    f.mintB,
		DecimalsA: decimalsA,
		DecimalsB: decimalsB,
	}
}

// open makes an offer that must succeed and returns the record address.
func (f *fixture) open(t testing.TB, seed, deposit, receive uint64) tokenswap.Address {
	t.Helper()
	res, err := f.deliver(f.db, f.maker, f.makeMsg(seed, deposit, receive))
	assert.Nil(t, err)
	return res.Data
}

func (f *fixture) balance(t testing.TB, owner, mint tokenswap.Address) uint64 {
	t.Helper()
	amount, err := f.tokens.Balance(f.db, owner, mint)
	assert.Nil(t, err)
	return amount
}

func (f *fixture) native(t testing.TB, addr tokenswap.Address) uint64 {
	t.Helper()
	amount, err := f.rent.Balance(f.db, addr)
	assert.Nil(t, err)
	return amount
}

// exists returns true if anything is stored at addr: a record, an account
// or a storage deposit.
func (f *fixture) exists(t testing.TB, addr tokenswap.Address) bool {
	t.Helper()
	rec, err := NewBucket().Has(f.db, addr)
	assert.Nil(t, err)
	acct, err := token.NewAccountBucket().Has(f.db, addr)
	assert.Nil(t, err)
	dep, err := f.rent.IsAllocated(f.db, addr)
	assert.Nil(t, err)
	return rec || acct || dep
}
