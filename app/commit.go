package app

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// CommitStore keeps one cache for DeliverTx and one for CheckTx on top of
// the committed state. Commit flushes the deliver cache and drops the
// check cache, so checks restart from the new state.
type CommitStore struct {
	committed tokenswap.CommitKVStore
	deliver   tokenswap.KVCacheWrap
	check     tokenswap.KVCacheWrap
}

func NewCommitStore(store tokenswap.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

func (cs *CommitStore) CommitInfo() (tokenswap.CommitID, error) {
	return cs.committed.LatestVersion()
}

func (cs *CommitStore) Commit() (tokenswap.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return tokenswap.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() tokenswap.CacheableKVStore {
	return cs.check
}

func (cs *CommitStore) DeliverStore() tokenswap.CacheableKVStore {
	return cs.deliver
}

// chainIDKey lives outside of every bucket prefix.
const chainIDKey = "_sw:chainID"

func loadChainID(kv tokenswap.ReadOnlyKVStore) (string, error) {
	raw, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID writes the chain id once. It cannot be changed afterwards.
func saveChainID(kv tokenswap.KVStore, chainID string) error {
	if !tokenswap.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	key := []byte(chainIDKey)
	switch exists, err := kv.Has(key); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "chain id is set at genesis only")
	}
	return errors.Wrap(kv.Set(key, []byte(chainID)), "save chain id")
}
