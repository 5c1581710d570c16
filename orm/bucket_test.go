package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

// offer is a minimal model used to exercise buckets and indexes.
type offer struct {
	Owner  []byte
	Amount uint64
}

func (o *offer) Validate() error {
	if len(o.Owner) == 0 {
		return errors.Wrap(errors.ErrEmpty, "owner")
	}
	return nil
}

func (o *offer) Marshal() ([]byte, error) {
	w := offerWire(*o)
	return proto.Marshal(&w)
}

func (o *offer) Unmarshal(raw []byte) error {
	var w offerWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	*o = offer(w)
	return nil
}

// offerWire is the tagged form of offer, encoded by reflection.
type offerWire struct {
	Owner  []byte `protobuf:"bytes,1,opt,name=owner,proto3"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3"`
}

func (m *offerWire) Reset()         { *m = offerWire{} }
func (m *offerWire) String() string { return proto.CompactTextString(m) }
func (*offerWire) ProtoMessage()    {}

func ownerIndexer(obj Object) ([]byte, error) {
	o, ok := obj.Value().(*offer)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return o.Owner, nil
}

func newOfferBucket() Bucket {
	return NewBucket("offer", NewSimpleObj(nil, new(offer))).
		WithIndex("owner", ownerIndexer, false)
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() {
		NewBucket("l33t", NewSimpleObj(nil, new(offer)))
	})
}

func TestBucketGetSaveDelete(t *testing.T) {
	db := store.MemStore()
	b := newOfferBucket()

	obj, err := b.Get(db, []byte("one"))
	assert.Nil(t, err)
	assert.Nil(t, obj)

	o := NewSimpleObj([]byte("one"), &offer{Owner: []byte("alice"), Amount: 7})
	assert.Nil(t, b.Save(db, o))

	obj, err = b.Get(db, []byte("one"))
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), obj.Value().(*offer).Amount)
	has, err := b.Has(db, []byte("one"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	assert.Nil(t, b.Delete(db, []byte("one")))
	obj, err = b.Get(db, []byte("one"))
	assert.Nil(t, err)
	assert.Nil(t, obj)
}

func TestBucketCannotSaveInvalid(t *testing.T) {
	db := store.MemStore()
	b := newOfferBucket()

	err := b.Save(db, NewSimpleObj([]byte("k"), &offer{}))
	assert.IsErr(t, errors.ErrEmpty, err)
	err = b.Save(db, NewSimpleObj(nil, &offer{Owner: []byte("bob")}))
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestBucketIndex(t *testing.T) {
	db := store.MemStore()
	b := newOfferBucket()

	save := func(key, owner string) {
		t.Helper()
		assert.Nil(t, b.Save(db, NewSimpleObj([]byte(key), &offer{Owner: []byte(owner)})))
	}
	save("a", "alice")
	save("b", "alice")
	save("c", "bob")

	objs, err := b.GetIndexed(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))
	assert.Equal(t, []byte("a"), objs[0].Key())
	assert.Equal(t, []byte("b"), objs[1].Key())

	// moving an object to another owner updates both entries
	save("b", "bob")
	objs, err = b.GetIndexed(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(objs))
	objs, err = b.GetIndexed(db, "owner", []byte("bob"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))

	assert.Nil(t, b.Delete(db, []byte("a")))
	objs, err = b.GetIndexed(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(objs))

	_, err = b.GetIndexed(db, "missing", []byte("alice"))
	assert.IsErr(t, ErrInvalidIndex, err)
}

func TestUniqueIndex(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("offer", NewSimpleObj(nil, new(offer))).
		WithIndex("owner", ownerIndexer, true)

	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("a"), &offer{Owner: []byte("alice")})))
	err := b.Save(db, NewSimpleObj([]byte("b"), &offer{Owner: []byte("alice")}))
	assert.IsErr(t, ErrUniqueConstraint, err)
}

func TestBucketQueries(t *testing.T) {
	db := store.MemStore()
	b := newOfferBucket()
	qr := tokenswap.NewQueryRouter()
	b.Register("offers", qr)

	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("a"), &offer{Owner: []byte("alice"), Amount: 3})))

	res, err := qr.Handler("/offers").Query(db, []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, b.DBKey([]byte("a")), res[0].Key)

	res, err = qr.Handler("/offers").Query(db, []byte("nope"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	res, err = qr.Handler("/offers/owner").Query(db, []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	var o offer
	assert.Nil(t, o.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(3), o.Amount)
}
