/*
Package orm splits the state into buckets.

A bucket holds objects of one type under a name prefix. Objects are
addressed by their primary key and may be found through secondary indexes
that the bucket keeps up to date on every save and delete.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket stores objects cloned from proto under the "<name>:" prefix.
// Wrap it in a type safe struct per model.
type Bucket struct {
	name    string
	prefix  []byte
	proto   Cloneable
	indexes map[string]Index
}

var _ tokenswap.QueryHandler = Bucket{}

// NewBucket panics on a name that is not 3 to 10 lower case letters or
// underscores.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name %q", name))
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
		proto:  proto,
	}
}

// WithIndex returns a copy of the bucket that maintains one more index.
// Index names must be unique within a bucket.
func (b Bucket) WithIndex(name string, indexer Indexer, unique bool) Bucket {
	if _, ok := b.indexes[name]; ok {
		panic(fmt.Sprintf("index %q registered twice on %q", name, b.name))
	}
	indexes := map[string]Index{
		name: NewIndex(b.name+"_"+name, indexer, unique, b.DBKey),
	}
	for n, idx := range b.indexes {
		indexes[n] = idx
	}
	b.indexes = indexes
	return b
}

// Register exposes the bucket at "/<path>" and every index at
// "/<path>/<index>". An empty path falls back to the bucket name.
func (b Bucket) Register(path string, r tokenswap.QueryRouter) {
	if path == "" {
		path = b.name
	}
	r.Register("/"+path, b)
	for name, idx := range b.indexes {
		r.Register("/"+path+"/"+name, idx)
	}
}

// Query returns the raw value under key, if any.
func (b Bucket) Query(db tokenswap.ReadOnlyKVStore, key []byte) ([]tokenswap.Model, error) {
	dbKey := b.DBKey(key)
	raw, err := db.Get(dbKey)
	if err != nil || raw == nil {
		return nil, err
	}
	return []tokenswap.Model{tokenswap.Pair(dbKey, raw)}, nil
}

// DBKey returns the absolute key of an object.
func (b Bucket) DBKey(key []byte) []byte {
	return prefixed(b.prefix, key)
}

// Get loads one object. A missing key gives (nil, nil).
func (b Bucket) Get(db tokenswap.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(err, "%s %X", b.name, key)
	}
	obj.SetKey(key)
	return obj, nil
}

// Has reports whether an object is stored under key.
func (b Bucket) Has(db tokenswap.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Save validates and writes obj, moving its index entries if needed.
func (b Bucket) Save(db tokenswap.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return err
	}
	if err := b.reindex(db, obj.Key(), obj); err != nil {
		return err
	}
	return db.Set(b.DBKey(obj.Key()), raw)
}

// Delete removes the object under key and its index entries.
func (b Bucket) Delete(db tokenswap.KVStore, key []byte) error {
	if err := b.reindex(db, key, nil); err != nil {
		return err
	}
	return db.Delete(b.DBKey(key))
}

// reindex moves the index entries of key from its stored version to next.
// A nil next removes them.
func (b Bucket) reindex(db tokenswap.KVStore, key []byte, next Object) error {
	if len(b.indexes) == 0 {
		return nil
	}
	prev, err := b.Get(db, key)
	if err != nil {
		return err
	}
	if prev == nil && next == nil {
		return nil
	}
	for _, idx := range b.indexes {
		if err := idx.Update(db, prev, next); err != nil {
			return err
		}
	}
	return nil
}

// GetIndexed loads every object the named index references under key.
func (b Bucket) GetIndexed(db tokenswap.ReadOnlyKVStore, index string, key []byte) ([]Object, error) {
	idx, ok := b.indexes[index]
	if !ok {
		return nil, errors.Wrap(ErrInvalidIndex, index)
	}
	refs, err := idx.GetAt(db, key)
	if err != nil || len(refs) == 0 {
		return nil, err
	}
	objs := make([]Object, 0, len(refs))
	for _, ref := range refs {
		obj, err := b.Get(db, ref)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// prefixed returns a new slice so that keys built from one prefix never
// share memory.
func prefixed(prefix, key []byte) []byte {
	out := make([]byte, len(prefix)+len(key))
	copy(out, prefix)
	copy(out[len(prefix):], key)
	return out
}
