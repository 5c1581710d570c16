package pebble

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

func open(t testing.TB, dir string) (store.CommitKVStore, func()) {
	db, err := NewCommitStore(dir)
	assert.Nil(t, err)
	return db, func() { assert.Nil(t, db.Close()) }
}

func TestCommitReload(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "pebble-commit-")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)

	store.CommitReload(t, open, tmpDir)
}

func TestCacheWrapSuite(t *testing.T) {
	makeBase := func() (store.CacheableKVStore, func()) {
		dir, err := ioutil.TempDir("", "pebble-suite-")
		assert.Nil(t, err)
		db, err := NewCommitStore(dir)
		assert.Nil(t, err)
		return db.CacheWrap(), func() {
			_ = db.Close()
			os.RemoveAll(dir)
		}
	}
	suite := store.NewTestSuite(makeBase)
	suite.GetSet(t)
	suite.CacheConflicts(t)
}

func TestHashDependsOnHistory(t *testing.T) {
	dirA, err := ioutil.TempDir("", "pebble-hash-a-")
	assert.Nil(t, err)
	defer os.RemoveAll(dirA)
	dirB, err := ioutil.TempDir("", "pebble-hash-b-")
	assert.Nil(t, err)
	defer os.RemoveAll(dirB)

	write := func(dir string, values ...string) []byte {
		db, err := NewCommitStore(dir)
		assert.Nil(t, err)
		defer db.Close()
		assert.Nil(t, db.LoadLatestVersion())
		for _, v := range values {
			cache := db.CacheWrap()
			assert.Nil(t, cache.Set([]byte("k"), []byte(v)))
			assert.Nil(t, cache.Write())
			_, err := db.Commit()
			assert.Nil(t, err)
		}
		id, err := db.LatestVersion()
		assert.Nil(t, err)
		return id.Hash
	}

	// same final state, different history
	a := write(dirA, "1", "2")
	b := write(dirB, "3", "2")
	if string(a) == string(b) {
		t.Fatal("app hash must cover the full history")
	}
}
