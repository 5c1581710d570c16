package errors

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors. Codes below 100 are shared by every extension, an extension
// registers its own codes from 100 up.
var (
	// ErrUnauthorized means a required signature or grant is missing.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrMsg means a message failed validation.
	ErrMsg = Register(4, "invalid message")

	// ErrModel means a stored entity failed validation.
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate means a unique key or index is taken.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman marks a code path that correct callers never reach.
	ErrHuman = Register(7, "coding error")

	// ErrImmutable means a write tried to change a fixed field.
	ErrImmutable = Register(8, "cannot be modified")

	// ErrEmpty means a required value is missing.
	ErrEmpty = Register(9, "value is empty")

	// ErrState means the entity cannot go through the operation in its
	// current state.
	ErrState = Register(10, "invalid state")

	// ErrType means a value is of an unexpected type or format.
	ErrType = Register(11, "invalid type")

	// ErrInsufficientAmount means a balance cannot cover the operation.
	ErrInsufficientAmount = Register(12, "insufficient amount")

	// ErrAmount means an amount is out of its valid range.
	ErrAmount = Register(13, "invalid amount")

	// ErrInput means user provided data cannot be decoded.
	ErrInput = Register(14, "invalid input")

	// ErrOverflow means the result does not fit its integer type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase means the backing store failed.
	ErrDatabase = Register(17, "database")

	// ErrPanic is set when a panic is recovered. Its details are never
	// sent to clients.
	ErrPanic = Register(111222, "panic")
)

// Register declares a root error with a code unique in this process. It
// panics when the code is taken, so call it from package level vars only.
func Register(code uint32, description string) *Error {
	if prev, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error code %d already registered as %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	usedCodes[code] = e
	return e
}

// code 1 is reserved for errors without a registered root
var usedCodes = map[uint32]*Error{
	1: {code: 1, desc: internalABCILog},
}

// Error is a root error. Every error returned to a client wraps one of
// them, and its code is what the client sees.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the response code of this error.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New is a shortcut for Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with fmt formatting.
func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrap(e, fmt.Sprintf(format, args...))
}

// Is reports whether err is this error, or wraps it. Both pkg/errors
// Cause and the standard Unwrap chains are followed.
func (kind *Error) Is(err error) bool {
	// a nil kind matches a nil error, even a typed nil
	if kind == nil {
		if err == nil {
			return true
		}
		v := reflect.ValueOf(err)
		return v.Kind() == reflect.Ptr && v.IsNil()
	}
	for ; err != nil; err = parent(err) {
		if err == kind {
			return true
		}
	}
	return false
}

// parent returns the error wrapped by err, nil if there is none.
func parent(err error) error {
	switch e := err.(type) {
	case causer:
		return e.Cause()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	default:
		return nil
	}
}

// Wrap annotates err with description. The innermost wrap records a stack
// trace. A nil err gives nil, so the result of a call can be wrapped
// unconditionally.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with fmt formatting.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error { return e.parent }
func (e *wrappedError) Unwrap() error { return e.parent }

// Format adds the stack trace of the innermost wrap for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", e.msg, e.parent)
		return
	}
	io.WriteString(s, e.Error())
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace carried by err or any error it
// wraps, nil if there is none.
func stackTrace(err error) errors.StackTrace {
	for ; err != nil; err = parent(err) {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	return nil
}

// Recover turns a panic into an ErrPanic assigned to *err. It only works
// when deferred directly.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}
