package sigs

import "github.com/iov-one/tokenswap/errors"

// ErrInvalidSequence is returned when a signature carries a sequence other
// than the next one expected for its signer.
var ErrInvalidSequence = errors.Register(130, "invalid sequence")
