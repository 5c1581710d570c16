package app

import (
	"context"
	"sync"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store/iavl"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const testChainID = "test-chain-1"

// rawQuery returns the value stored under the exact key.
type rawQuery struct{}

func (rawQuery) Query(db tokenswap.ReadOnlyKVStore, key []byte) ([]tokenswap.Model, error) {
	v, err := db.Get(key)
	if err != nil || v == nil {
		return nil, err
	}
	return []tokenswap.Model{tokenswap.Pair(key, v)}, nil
}

// recordingInit remembers the options it was given.
type recordingInit struct {
	calls int
	conf  string
}

func (r *recordingInit) FromGenesis(opts tokenswap.Options, db tokenswap.KVStore) error {
	r.calls++
	if err := opts.ReadOptions("conf", &r.conf); err != nil {
		return err
	}
	return db.Set([]byte("genesis"), []byte(r.conf))
}

func newStoreApp(t *testing.T, db dbm.DB) *StoreApp {
	t.Helper()
	qr := tokenswap.NewQueryRouter()
	qr.Register("/raw", rawQuery{})
	s, err := NewStoreApp("test", iavl.NewCommitStoreWithDB(db), qr, context.Background())
	require.NoError(t, err)
	return s
}

func TestStoreAppGenesis(t *testing.T) {
	db := dbm.NewMemDB()
	s := newStoreApp(t, db)
	genesis := &recordingInit{}
	s.WithInit(genesis)

	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{ChainId: testChainID})
	})

	s.InitChain(abci.RequestInitChain{
		ChainId:       testChainID,
		AppStateBytes: []byte(`{"conf": "hello"}`),
	})
	assert.Equal(t, 1, genesis.calls)
	assert.Equal(t, testChainID, s.GetChainID())
	assert.Equal(t, testChainID, tokenswap.GetChainID(s.BlockContext()))

	res := s.Commit()
	assert.NotEmpty(t, res.Data)

	info := s.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, res.Data, info.LastBlockAppHash)
	assert.Equal(t, tokenswap.Version(), info.Version)

	// genesis can be loaded only once
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{
			ChainId:       testChainID,
			AppStateBytes: []byte(`{}`),
		})
	})

	// a restart picks up the stored chain id and height
	again := newStoreApp(t, db)
	assert.Equal(t, testChainID, again.GetChainID())
	h, _ := tokenswap.GetHeight(again.BlockContext())
	assert.Equal(t, int64(1), h)

	got, err := NewABCIStore(again, "/raw").Get([]byte("genesis"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestStoreAppQuery(t *testing.T) {
	s := newStoreApp(t, dbm.NewMemDB())
	s.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: []byte(`{}`)})
	require.NoError(t, s.DeliverStore().Set([]byte("k"), []byte("v")))

	// not visible before commit
	has, err := NewABCIStore(s, "/raw").Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, has)

	s.Commit()
	models, err := QueryModels(s, "/raw", []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []tokenswap.Model{tokenswap.Pair([]byte("k"), []byte("v"))}, models)

	_, err = QueryModels(s, "/unknown", nil)
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = QueryModels(s, "/raw?prefix", nil)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestBaseApp(t *testing.T) {
	s := newStoreApp(t, dbm.NewMemDB())
	s.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: []byte(`{}`)})

	h := &swaptest.Handler{
		Key:           []byte("written"),
		Value:         []byte("yes"),
		DeliverResult: tokenswap.DeliverResult{Log: "done"},
	}
	decoder := func(raw []byte) (tokenswap.Tx, error) {
		switch string(raw) {
		case "panic":
			panic("cannot decode")
		case "bad":
			return nil, errors.ErrInput.New("garbage")
		}
		return &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: string(raw)}}, nil
	}
	r := NewRouter()
	r.Handle("test/write", h)
	app := NewBaseApp(s, decoder, r, false)

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})

	check := app.CheckTx([]byte("test/write"))
	assert.Equal(t, errors.SuccessABCICode, check.Code, check.Log)

	res := app.DeliverTx([]byte("test/write"))
	assert.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	assert.Equal(t, "done", res.Log)

	res = app.DeliverTx([]byte("test/missing"))
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)

	res = app.DeliverTx([]byte("bad"))
	assert.Equal(t, errors.ErrInput.ABCICode(), res.Code)

	// panics while decoding are reported as an internal error
	res = app.DeliverTx([]byte("panic"))
	assert.NotEqual(t, errors.SuccessABCICode, res.Code)

	app.EndBlock(abci.RequestEndBlock{})
	app.Commit()

	val, err := NewABCIStore(app, "/raw").Get([]byte("written"))
	require.NoError(t, err)
	assert.Equal(t, []byte("yes"), val)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestBaseAppSerializesCalls(t *testing.T) {
	s := newStoreApp(t, dbm.NewMemDB())
	s.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: []byte(`{}`)})

	h := &swaptest.Handler{}
	r := NewRouter()
	r.Handle("test/count", h)
	decoder := func(raw []byte) (tokenswap.Tx, error) {
		return &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: string(raw)}}, nil
	}
	app := NewBaseApp(s, decoder, r, false)
	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			app.DeliverTx([]byte("test/count"))
		}()
		go func() {
			defer wg.Done()
			app.CheckTx([]byte("test/count"))
		}()
	}
	wg.Wait()

	assert.Equal(t, n, h.DeliverCallCount())
	assert.Equal(t, n, h.CheckCallCount())
}
