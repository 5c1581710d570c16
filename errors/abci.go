package errors

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode declares an ABCI response use 0 to signal that the
	// processing was successful and no error is returned.
	SuccessABCICode uint32 = 0

	// Errors that do not carry a registered code are reported with the
	// internal code and a generic message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log message of an ABCI response for the
// given error. Only errors that carry a registered code expose their
// message. When debug is set, the full error (with a stack trace when
// available) is always returned.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}

	code := abciCode(err)
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	if code == internalABCICode || code == ErrPanic.code {
		return internalABCICode, internalABCILog
	}
	return code, err.Error()
}

// ABCIError is the inverse of ABCIInfo. It returns an error wrapping the
// registered root error of given code, so that the client can test it with
// the Is method. Unknown codes are reported as internal errors.
func ABCIError(code uint32, log string) error {
	if root, ok := usedCodes[code]; ok && root != nil {
		return &wrappedError{parent: root, msg: log}
	}
	return &wrappedError{parent: usedCodes[internalABCICode], msg: log}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the first ABCI code found in the wrap chain of err.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}
	for ; err != nil; err = parent(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
	}
	return internalABCICode
}

// errIsNil returns true if value represented by the given error is nil.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}

// Redact replaces all errors that do not carry a registered code with a
// generic internal error. It is a no-operation in debug mode.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) {
		return errors.New(internalABCILog)
	}
	if abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
