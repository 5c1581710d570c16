package store

import (
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

func TestOpApply(t *testing.T) {
	kv := MemStore()
	assert.Nil(t, SetOp([]byte("a"), []byte("b")).Apply(kv))
	v, err := kv.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("b"), v)

	assert.Nil(t, DelOp([]byte("a")).Apply(kv))
	ok, err := kv.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	assert.IsErr(t, errors.ErrDatabase, Op{}.Apply(kv))
}

func TestOpInspection(t *testing.T) {
	k, v, isSet := SetOp([]byte("k"), []byte("v")).IsSetOp()
	assert.Equal(t, true, isSet)
	assert.Equal(t, []byte("k"), k)
	assert.Equal(t, []byte("v"), v)
	_, isDel := SetOp(k, v).IsDeleteOp()
	assert.Equal(t, false, isDel)

	k, isDel = DelOp([]byte("gone")).IsDeleteOp()
	assert.Equal(t, true, isDel)
	assert.Equal(t, []byte("gone"), k)
}

func TestNonAtomicBatch(t *testing.T) {
	kv := MemStore()
	b := NewNonAtomicBatch(kv)
	assert.Nil(t, b.Set([]byte("x"), []byte("1")))
	assert.Nil(t, b.Delete([]byte("y")))
	assert.Equal(t, 2, len(b.ShowOps()))

	// nothing reaches the store before Write
	ok, err := kv.Has([]byte("x"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	assert.Nil(t, b.Write())
	assert.Equal(t, 0, len(b.ShowOps()))
	ok, err = kv.Has([]byte("x"))
	assert.Nil(t, err)
	assert.Equal(t, true, ok)
}

func TestRecordingStore(t *testing.T) {
	rec := NewRecordingStore(MemStore())

	cache := rec.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))
	cache.Discard()
	assert.Equal(t, 0, len(rec.KVPairs()))

	cache = rec.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))
	assert.Nil(t, cache.Delete([]byte("b")))
	assert.Nil(t, cache.Write())
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": nil}, rec.KVPairs())
}
