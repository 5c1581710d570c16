package token

import "github.com/iov-one/tokenswap/errors"

// ErrAssetMismatch is returned when a declared mint or precision disagrees
// with the registered one.
var ErrAssetMismatch = errors.Register(100, "asset mismatch")
