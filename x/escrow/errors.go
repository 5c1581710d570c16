package escrow

import "github.com/iov-one/tokenswap/errors"

// ErrRecordMismatch is returned when the parties or assets named by a
// take differ from the ones stored in the record.
var ErrRecordMismatch = errors.Register(110, "record mismatch")
