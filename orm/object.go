package orm

import (
	"reflect"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// SimpleObj is the Object used by every bucket of this repository: a key
// and a model with nothing else attached.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ Object = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte { return o.key }
func (o *SimpleObj) SetKey(key []byte) { o.key = key }
func (o SimpleObj) Value() tokenswap.Persistent { return o.value }

// Validate requires both parts and validates the model.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Wrap(errors.ErrEmpty, "key")
	case o.value == nil:
		return errors.Wrap(errors.ErrEmpty, "value")
	}
	return errors.Wrap(o.value.Validate(), "value")
}

// Clone returns an object with a zero model of the same type. The key is
// copied when set.
func (o *SimpleObj) Clone() Object {
	model := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(Model)
	var key []byte
	if len(o.key) > 0 {
		key = append([]byte(nil), o.key...)
	}
	return &SimpleObj{key: key, value: model}
}
