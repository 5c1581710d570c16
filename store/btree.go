package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/tokenswap/errors"
)

// degree of the in memory trees. Caches live for one transaction or one
// block, so they stay small.
const treeDegree = 2

// MemStore returns a store that lives in memory only. It is the base of
// most tests.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// ShowOpser returns an ordered list of all operations performed
type ShowOpser interface {
	ShowOps() []Op
}

// LogableStore returns a memory store together with the log of every
// write that reached its batch.
func LogableStore() (CacheableKVStore, ShowOpser) {
	e := EmptyKVStore{}
	b := NewNonAtomicBatch(e)
	return NewBTreeCacheWrap(e, b, nil), b
}

// BTreeCacheWrap keeps pending writes in a btree on top of a read only
// parent. Reads see the pending writes first. Every write is mirrored to
// a batch that flushes them to the parent on Write.
type BTreeCacheWrap struct {
	tree   *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap caches writes to batch, reading through to parent.
// Passing the free list of another cache shares its node pool, nil
// allocates a new one.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		tree:   btree.NewWithFreeList(treeDegree, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

// CacheWrap nests another cache, sharing the node pool.
func (c BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(c, c.NewBatch(), c.free)
}

// NewBatch returns a batch writing into this cache.
func (c BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(c)
}

// Write flushes the pending writes to the parent and empties the cache.
func (c BTreeCacheWrap) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops every pending write.
func (c BTreeCacheWrap) Discard() {
	for c.tree.DeleteMin() != nil {
	}
	if r, ok := c.batch.(interface{ Reset() }); ok {
		r.Reset()
	}
}

func (c BTreeCacheWrap) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, value: value})
	return c.batch.Set(key, value)
}

func (c BTreeCacheWrap) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

func (c BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	e, ok, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return c.parent.Get(key)
	}
	if e.deleted {
		return nil, nil
	}
	return e.value, nil
}

func (c BTreeCacheWrap) Has(key []byte) (bool, error) {
	e, ok, err := c.lookup(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return c.parent.Has(key)
	}
	return !e.deleted, nil
}

// lookup returns the pending write for key, if any.
func (c BTreeCacheWrap) lookup(key []byte) (entry, bool, error) {
	item := c.tree.Get(entry{key: key})
	if item == nil {
		return entry{}, false, nil
	}
	e, ok := item.(entry)
	if !ok {
		return entry{}, false, errors.Wrapf(errors.ErrDatabase, "unexpected cache item %T", item)
	}
	return e, true, nil
}

// entry is a pending write. A deleted entry hides the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(other btree.Item) bool {
	return bytes.Compare(e.key, other.(entry).key) < 0
}
