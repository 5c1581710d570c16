package app

import (
	"sync"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds DeliverTx, CheckTx, and BeginBlock
// handlers to the storage and query functionality of StoreApp.
//
// Every call that reads or writes state holds one lock, so transactions
// are executed one at a time no matter how many connections the ABCI
// server serves.
type BaseApp struct {
	*StoreApp
	mu      sync.Mutex
	decoder tokenswap.TxDecoder
	handler tokenswap.Handler
	debug   bool
}

var _ abci.Application = (*BaseApp)(nil)

// NewBaseApp constructs a basic abci application
func NewBaseApp(
	store *StoreApp,
	decoder tokenswap.TxDecoder,
	handler tokenswap.Handler,
	debug bool,
) *BaseApp {
	return &BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b *BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return tokenswap.DeliverTxError(err, b.debug)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ctx := tokenswap.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", tokenswap.GetPath(tx))
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return tokenswap.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b *BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return tokenswap.CheckTxError(err, b.debug)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ctx := tokenswap.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", tokenswap.GetPath(tx))
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return tokenswap.CheckOrError(res, err, b.debug)
}

// Query - ABCI
func (b *BaseApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.StoreApp.Query(req)
}

// InitChain - ABCI
func (b *BaseApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.StoreApp.InitChain(req)
}

// BeginBlock - ABCI
func (b *BaseApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.StoreApp.BeginBlock(req)
}

// Commit - ABCI
func (b *BaseApp) Commit() abci.ResponseCommit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.StoreApp.Commit()
}

// loadTx calls the decoder, and capture any panics
func (b *BaseApp) loadTx(txBytes []byte) (tx tokenswap.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
