package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the parts of abci.Application that do not execute
// transactions: handshake, genesis, queries and commits.
//
// Info, InitChain and Commit take no user input and have no way to report
// an error, so a failure there panics and stops the node.
type StoreApp struct {
	name        string
	logger      log.Logger
	store       *CommitStore
	initializer tokenswap.Initializer
	queryRouter tokenswap.QueryRouter

	// chainID is empty until genesis was loaded
	chainID string

	// baseContext lives as long as the app, blockContext is replaced on
	// every BeginBlock
	baseContext  tokenswap.Context
	blockContext tokenswap.Context
}

// NewStoreApp loads the latest committed version of store. A chain id
// saved by a previous run is restored.
func NewStoreApp(name string, store tokenswap.CommitKVStore,
	queryRouter tokenswap.QueryRouter, baseContext tokenswap.Context) (*StoreApp, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	s := &StoreApp{
		name:        name,
		store:       cs,
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s.WithLogger(log.NewNopLogger())

	if s.chainID, err = loadChainID(cs.DeliverStore()); err != nil {
		return nil, err
	}
	if s.chainID != "" {
		s.baseContext = tokenswap.WithChainID(s.baseContext, s.chainID)
	}
	info, err := cs.CommitInfo()
	if err != nil {
		return nil, err
	}
	s.blockContext = tokenswap.WithHeight(s.baseContext, info.Version)
	return s, nil
}

func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the initializer run by InitChain.
func (s *StoreApp) WithInit(init tokenswap.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger of the app and of every context it creates.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = tokenswap.WithLogger(s.baseContext, logger)
	return s
}

func (s *StoreApp) BlockContext() tokenswap.Context {
	return s.blockContext
}

func (s *StoreApp) DeliverStore() tokenswap.CacheableKVStore {
	return s.store.DeliverStore()
}

func (s *StoreApp) CheckStore() tokenswap.CacheableKVStore {
	return s.store.CheckStore()
}

// loadGenesis runs once, on the first InitChain of a chain.
func (s *StoreApp) loadGenesis(chainID string, appState []byte) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis of %s already loaded", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrState, "app_state missing from genesis.json, run init first")
	}
	var opts tokenswap.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = tokenswap.WithChainID(s.baseContext, chainID)
	// CheckTx may run before the first BeginBlock
	s.blockContext = tokenswap.WithHeight(s.baseContext, 0)

	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// Info reports the last committed height and app hash.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          tokenswap.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not implemented"}
}

// Query reads the last committed state. Path selects a bucket, "/<bucket>",
// or one of its indexes, "/<bucket>/<index>". Data is the key looked up.
//
// Key and Value of the response are ResultSets of equal length, so a
// query may return any number of models.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	if strings.Contains(req.Path, "?") {
		return queryError(errors.Wrapf(errors.ErrInput, "query modifiers are not supported: %q", req.Path))
	}
	h := s.queryRouter.Handler(req.Path)
	if h == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path))
	}
	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}

	db := s.store.committed.CacheWrap()
	defer db.Discard()
	models, err := h.Query(db, req.Data)
	if err != nil {
		return queryError(err)
	}

	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return queryError(err)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return queryError(err)
	}
	return res
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}

// Commit persists the block and returns the new app hash.
func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.loadGenesis(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	s.blockContext = tokenswap.WithHeight(s.baseContext, req.Header.Height)
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
