/*
Package pebble implements a commit store on top of a cockroachdb pebble
database.

Every Commit writes all changes of the block together with the new version
and app hash in a single synced batch, so a crash leaves the store at the
previous or the new version, never in between. The app hash chains the
previous hash with the ordered list of operations of the block.
*/
package pebble

import (
	"crypto/sha256"
	"encoding/binary"
	stderrors "errors"
	"hash"

	"github.com/cockroachdb/pebble"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
)

var (
	dataPrefix  = []byte("d/")
	versionKey  = []byte("m/version")
	hashKey     = []byte("m/hash")
	opSeparator = []byte{0}
)

// CommitStore keeps the committed state in pebble and the not yet
// committed state of the current block in memory.
type CommitStore struct {
	db      *pebble.DB
	version int64
	hash    []byte

	pending *store.NonAtomicBatch
	working store.BTreeCacheWrap
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore opens (or creates) the pebble database in dir.
func NewCommitStore(dir string) (*CommitStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open pebble: %s", err)
	}
	s := &CommitStore{db: db}
	s.resetWorking()
	return s, nil
}

func (s *CommitStore) resetWorking() {
	s.pending = store.NewNonAtomicBatch(store.EmptyKVStore{})
	s.working = store.NewBTreeCacheWrap(committed{s.db}, s.pending, nil)
}

// Close releases the database.
func (s *CommitStore) Close() error {
	return s.db.Close()
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	return committed{s.db}.Get(key)
}

// CacheWrap gives a scratch pad on top of the current block state.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return s.working.CacheWrap()
}

// Commit writes all changes of the current block with the next version
// in one atomic batch.
func (s *CommitStore) Commit() (store.CommitID, error) {
	ops := s.pending.ShowOps()
	version := s.version + 1

	h := sha256.New()
	_, _ = h.Write(s.hash)
	b := s.db.NewBatch()
	defer b.Close()
	for _, op := range ops {
		if key, value, ok := op.IsSetOp(); ok {
			if err := b.Set(dataKey(key), value, nil); err != nil {
				return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
			}
			hashOp(h, 's', key, value)
		} else if key, ok := op.IsDeleteOp(); ok {
			if err := b.Delete(dataKey(key), nil); err != nil {
				return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
			}
			hashOp(h, 'd', key, nil)
		}
	}
	sum := h.Sum(nil)

	var rawVersion [8]byte
	binary.BigEndian.PutUint64(rawVersion[:], uint64(version))
	if err := b.Set(versionKey, rawVersion[:], nil); err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := b.Set(hashKey, sum, nil); err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return store.CommitID{}, errors.Wrapf(errors.ErrDatabase, "commit version %d: %s", version, err)
	}

	s.version = version
	s.hash = sum
	s.resetWorking()
	return store.CommitID{Version: version, Hash: sum}, nil
}

func hashOp(h hash.Hash, kind byte, key, value []byte) {
	var size [8]byte
	_, _ = h.Write([]byte{kind})
	binary.BigEndian.PutUint64(size[:], uint64(len(key)))
	_, _ = h.Write(size[:])
	_, _ = h.Write(key)
	binary.BigEndian.PutUint64(size[:], uint64(len(value)))
	_, _ = h.Write(size[:])
	_, _ = h.Write(value)
	_, _ = h.Write(opSeparator)
}

// LoadLatestVersion reads the version and hash of the last commit and
// drops anything not committed.
func (s *CommitStore) LoadLatestVersion() error {
	rawVersion, err := get(s.db, versionKey)
	if err != nil {
		return err
	}
	sum, err := get(s.db, hashKey)
	if err != nil {
		return err
	}
	s.version = 0
	if len(rawVersion) == 8 {
		s.version = int64(binary.BigEndian.Uint64(rawVersion))
	}
	s.hash = sum
	s.resetWorking()
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{Version: s.version, Hash: s.hash}, nil
}

// committed reads the state as of the last commit.
type committed struct {
	db *pebble.DB
}

var _ store.ReadOnlyKVStore = committed{}

func (c committed) Get(key []byte) ([]byte, error) {
	return get(c.db, dataKey(key))
}

func (c committed) Has(key []byte) (bool, error) {
	val, err := get(c.db, dataKey(key))
	return val != nil, err
}

func get(db *pebble.DB, key []byte) ([]byte, error) {
	val, closer, err := db.Get(key)
	if stderrors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer closer.Close()
	res := make([]byte, len(val))
	copy(res, val)
	return res, nil
}

func dataKey(key []byte) []byte {
	res := make([]byte, 0, len(dataPrefix)+len(key))
	res = append(res, dataPrefix...)
	return append(res, key...)
}
