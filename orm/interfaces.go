package orm

import (
	"github.com/iov-one/tokenswap"
)

// Object is a model together with the primary key it is stored under.
type Object interface {
	Keyed
	Cloneable
	Validate() error
	Value() tokenswap.Persistent
}

// Keyed exposes the primary key of an object.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable returns an empty object of the same type to decode into.
type Cloneable interface {
	Clone() Object
}

// Model is the value part of an Object.
type Model interface {
	tokenswap.Persistent
	Validate() error
}
