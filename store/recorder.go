package store

// Recorder interface is implemented by anything returned from
// NewRecordingStore
type Recorder interface {
	// KVPairs returns every key that changed. The value is the new value
	// for a set and nil for a delete.
	KVPairs() map[string][]byte
}

// NewRecordingStore initializes a recording store wrapping this
// base store. Changes that only reach a cache wrap are not recorded
// until that cache wrap is written.
func NewRecordingStore(db CacheableKVStore) interface {
	CacheableKVStore
	Recorder
} {
	return &recordingStore{
		CacheableKVStore: db,
		changes:          make(map[string][]byte),
	}
}

type recordingStore struct {
	CacheableKVStore
	changes map[string][]byte
}

var _ Recorder = (*recordingStore)(nil)

func (r *recordingStore) KVPairs() map[string][]byte {
	return r.changes
}

func (r *recordingStore) Set(key, value []byte) error {
	if err := r.CacheableKVStore.Set(key, value); err != nil {
		return err
	}
	r.changes[string(key)] = value
	return nil
}

func (r *recordingStore) Delete(key []byte) error {
	if err := r.CacheableKVStore.Delete(key); err != nil {
		return err
	}
	r.changes[string(key)] = nil
	return nil
}

func (r *recordingStore) NewBatch() Batch {
	return NewNonAtomicBatch(r)
}

// CacheWrap writes through the recorder once the cache wrap is written.
func (r *recordingStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(r, r.NewBatch(), nil)
}
