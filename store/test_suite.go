package store

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

// TestSuite runs the same checks against any cache wrappable store. Each
// check builds a fresh store with the constructor.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a function releasing it.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet checks that a cache wrap sees its parent, hides its own writes
// until Write, and leaves no trace after Discard.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	mint, supply := []byte("mint:A"), []byte("1000")
	acct, balance := []byte("acct:maker"), []byte("400")
	escrow, state := []byte("escrow:1"), []byte("open")

	s.AssertGetHas(t, base, mint, nil, false)
	assert.Nil(t, base.Set(mint, supply))
	s.AssertGetHas(t, base, mint, supply, true)

	tx := base.CacheWrap()
	s.AssertGetHas(t, tx, mint, supply, true)
	assert.Nil(t, tx.Set(acct, balance))
	s.AssertGetHas(t, tx, acct, balance, true)
	s.AssertGetHas(t, base, acct, nil, false)
	assert.Nil(t, tx.Write())
	s.AssertGetHas(t, base, acct, balance, true)

	failed := base.CacheWrap()
	assert.Nil(t, failed.Set(escrow, state))
	assert.Nil(t, failed.Delete(acct))
	failed.Discard()
	s.AssertGetHas(t, base, escrow, nil, false)
	s.AssertGetHas(t, base, acct, balance, true)

	closing := base.CacheWrap()
	assert.Nil(t, closing.Delete(mint))
	s.AssertGetHas(t, closing, mint, nil, false)
	s.AssertGetHas(t, base, mint, supply, true)
	assert.Nil(t, closing.Write())
	s.AssertGetHas(t, base, mint, nil, false)
	s.AssertGetHas(t, base, acct, balance, true)
}

// CacheConflicts checks a child that overwrites and deletes keys of its
// parent. The parent is untouched until the child is written.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	k := func(n string) []byte { return []byte("key/" + n) }
	v := func(n string) []byte { return []byte("value/" + n) }

	cases := map[string]struct {
		parentOps []Op
		childOps  []Op
		// Key is queried, a nil Value means the key must be missing
		before []tokenswap.Model
		after  []tokenswap.Model
	}{
		"overwrite, delete and add": {
			parentOps: []Op{SetOp(k("a"), v("1")), SetOp(k("b"), v("2"))},
			childOps:  []Op{SetOp(k("a"), v("3")), DelOp(k("b")), SetOp(k("c"), v("4"))},
			before:    []tokenswap.Model{tokenswap.Pair(k("a"), v("1")), tokenswap.Pair(k("b"), v("2")), tokenswap.Pair(k("c"), nil)},
			after:     []tokenswap.Model{tokenswap.Pair(k("a"), v("3")), tokenswap.Pair(k("b"), nil), tokenswap.Pair(k("c"), v("4"))},
		},
		"delete then set again": {
			parentOps: []Op{SetOp(k("a"), v("1"))},
			childOps:  []Op{DelOp(k("a")), SetOp(k("a"), v("2"))},
			before:    []tokenswap.Model{tokenswap.Pair(k("a"), v("1"))},
			after:     []tokenswap.Model{tokenswap.Pair(k("a"), v("2"))},
		},
		"set then delete": {
			parentOps: nil,
			childOps:  []Op{SetOp(k("a"), v("1")), DelOp(k("a"))},
			before:    []tokenswap.Model{tokenswap.Pair(k("a"), nil)},
			after:     []tokenswap.Model{tokenswap.Pair(k("a"), nil)},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()
			for _, op := range tc.parentOps {
				assert.Nil(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				assert.Nil(t, op.Apply(child))
			}

			s.assertModels(t, parent, tc.before)
			s.assertModels(t, child, tc.after)
			assert.Nil(t, child.Write())
			s.assertModels(t, parent, tc.after)
		})
	}
}

func (s *TestSuite) assertModels(t testing.TB, kv ReadOnlyKVStore, want []tokenswap.Model) {
	t.Helper()
	for _, m := range want {
		s.AssertGetHas(t, kv, m.Key, m.Value, m.Value != nil)
	}
}

// AssertGetHas checks Get and Has of one key at once.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// CommitStoreConstructor opens a commit store over the given directory.
// Opening the same directory twice must yield the same persisted state.
type CommitStoreConstructor func(t testing.TB, dir string) (CommitKVStore, func())

// CommitReload writes two versions, reopens the store and checks that the
// last committed state and version survive.
func CommitReload(t *testing.T, open CommitStoreConstructor, dir string) {
	db, closer := open(t, dir)
	assert.Nil(t, db.LoadLatestVersion())

	k, v := []byte("escrow"), []byte("open")
	k2, v2 := []byte("token"), []byte("1000")

	cache := db.CacheWrap()
	assert.Nil(t, cache.Set(k, v))
	assert.Nil(t, cache.Write())
	first, err := db.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), first.Version)

	cache = db.CacheWrap()
	assert.Nil(t, cache.Set(k2, v2))
	assert.Nil(t, cache.Delete(k))
	// uncommitted writes are visible only through a cache wrap
	discarded := db.CacheWrap()
	assert.Nil(t, discarded.Set([]byte("ghost"), []byte("boo")))
	discarded.Discard()
	assert.Nil(t, cache.Write())
	second, err := db.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), second.Version)
	closer()

	db, closer = open(t, dir)
	defer closer()
	assert.Nil(t, db.LoadLatestVersion())
	latest, err := db.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, second.Version, latest.Version)
	assert.Equal(t, second.Hash, latest.Hash)

	got, err := db.Get(k2)
	assert.Nil(t, err)
	assert.Equal(t, v2, got)
	got, err = db.Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)
	got, err = db.Get([]byte("ghost"))
	assert.Nil(t, err)
	assert.Nil(t, got)
}
