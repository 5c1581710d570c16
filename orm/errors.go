package orm

import (
	"github.com/iov-one/tokenswap/errors"
)

// Orm reserves 120~129 error codes

// ErrInvalidIndex is returned when an index specified is invalid
var ErrInvalidIndex = errors.Register(120, "invalid index")

// ErrUniqueConstraint is returned when a unique index would point to
// more than one object
var ErrUniqueConstraint = errors.Register(121, "duplicate unique key")
