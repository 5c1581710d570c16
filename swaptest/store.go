package swaptest

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
)

// FailingStore wraps a store and returns an error on the nth write
// (counting from 1) and every write after it. Writes of nested cache
// wraps are counted when they happen, not when the cache is written,
// so the failure hits the operation under test.
type FailingStore struct {
	store.CacheableKVStore
	FailAt int
	writes *int
}

var _ tokenswap.CacheableKVStore = (*FailingStore)(nil)

// ErrInjected is returned by a FailingStore.
var ErrInjected = errors.ErrDatabase.New("injected failure")

// NewFailingStore wraps kv so that the nth write fails.
func NewFailingStore(kv store.CacheableKVStore, failAt int) *FailingStore {
	return &FailingStore{CacheableKVStore: kv, FailAt: failAt, writes: new(int)}
}

// Writes returns how many writes were attempted.
func (f *FailingStore) Writes() int {
	return *f.writes
}

func (f *FailingStore) count() error {
	*f.writes++
	if f.FailAt > 0 && *f.writes >= f.FailAt {
		return ErrInjected
	}
	return nil
}

func (f *FailingStore) Set(key, value []byte) error {
	if err := f.count(); err != nil {
		return err
	}
	return f.CacheableKVStore.Set(key, value)
}

func (f *FailingStore) Delete(key []byte) error {
	if err := f.count(); err != nil {
		return err
	}
	return f.CacheableKVStore.Delete(key)
}

func (f *FailingStore) NewBatch() tokenswap.Batch {
	return store.NewNonAtomicBatch(f)
}

// CacheWrap returns a cache wrap whose writes are counted by this store.
func (f *FailingStore) CacheWrap() tokenswap.KVCacheWrap {
	inner := f.CacheableKVStore.CacheWrap()
	return &failingCache{
		FailingStore: &FailingStore{CacheableKVStore: inner, FailAt: f.FailAt, writes: f.writes},
		cache:        inner,
	}
}

type failingCache struct {
	*FailingStore
	cache tokenswap.KVCacheWrap
}

func (c *failingCache) Write() error {
	return c.cache.Write()
}

func (c *failingCache) Discard() {
	c.cache.Discard()
}
