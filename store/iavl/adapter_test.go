package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

func makeBase() (store.CacheableKVStore, func()) {
	commit := NewMemCommitStore()
	return commit.Adapter(), commit.Close
}

func TestCacheGetSet(t *testing.T) {
	store.NewTestSuite(makeBase).GetSet(t)
}

func TestCacheConflicts(t *testing.T) {
	store.NewTestSuite(makeBase).CacheConflicts(t)
}

func TestCommitReload(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)

	open := func(t testing.TB, dir string) (store.CommitKVStore, func()) {
		commit, err := NewCommitStore(dir, "base")
		assert.Nil(t, err)
		return commit, commit.Close
	}
	store.CommitReload(t, open, tmpDir)
}

func TestUncommittedIsInvisible(t *testing.T) {
	commit := NewMemCommitStore()
	defer commit.Close()

	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("maker"), []byte("offer")))
	assert.Nil(t, cache.Write())

	got, err := commit.Get([]byte("maker"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	id, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	got, err = commit.Get([]byte("maker"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("offer"), got)
}
