package store

import (
	"testing"

	"github.com/iov-one/tokenswap/swaptest/assert"
)

func TestBTreeCacheGetSet(t *testing.T) {
	NewTestSuite(memStoreConstructor).GetSet(t)
}

func TestBTreeCacheConflicts(t *testing.T) {
	NewTestSuite(memStoreConstructor).CacheConflicts(t)
}

func memStoreConstructor() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestBTreeCacheDiscardDropsPendingOps(t *testing.T) {
	base, ops := LogableStore()

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))
	cache.Discard()
	// a discarded cache wrap cannot leak into the parent on a later write
	assert.Nil(t, cache.Write())
	assert.Equal(t, 0, len(ops.ShowOps()))

	cache = base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))
	assert.Nil(t, cache.Delete([]byte("c")))
	assert.Nil(t, cache.Write())
	assert.Equal(t, []Op{SetOp([]byte("b"), []byte("2")), DelOp([]byte("c"))}, ops.ShowOps())
}

func TestNestedCacheWraps(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	inner := outer.CacheWrap()

	assert.Nil(t, inner.Set([]byte("k"), []byte("v")))
	assert.Nil(t, inner.Write())
	got, err := base.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, outer.Write())
	got, err = base.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v"), got)
}
