package app

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Querier is the part of an abci application that answers queries.
// Both StoreApp and BaseApp implement it.
type Querier interface {
	Query(abci.RequestQuery) abci.ResponseQuery
}

var _ Querier = (*StoreApp)(nil)

// QueryModels runs a query against an abci application and returns
// the decoded key/value pairs.
func QueryModels(app Querier, path string, data []byte) ([]tokenswap.Model, error) {
	res := app.Query(abci.RequestQuery{Path: path, Data: data})
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	var k, v ResultSet
	if err := k.Unmarshal(res.Key); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := v.Unmarshal(res.Value); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}

// ABCIStore exposes one bucket query path of an abci application as a
// ReadOnlyKVStore. Keys are the bucket relative keys.
type ABCIStore struct {
	app  Querier
	path string
}

var _ tokenswap.ReadOnlyKVStore = (*ABCIStore)(nil)

// NewABCIStore reads values through the given bucket query path,
// for example "/escrows".
func NewABCIStore(app Querier, path string) *ABCIStore {
	return &ABCIStore{app: app, path: path}
}

// Get will query for exactly one value over the abci store.
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	models, err := QueryModels(a.app, a.path, key)
	if err != nil {
		return nil, err
	}
	switch len(models) {
	case 0:
		return nil, nil
	case 1:
		return models[0].Value, nil
	default:
		return nil, errors.Wrapf(errors.ErrState, "%d results for one key", len(models))
	}
}

// Has returns true if the given key is in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	val, err := a.Get(key)
	return val != nil, err
}
