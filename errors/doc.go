/*
Package errors implements the error handling used by all extensions.

Reuse the root errors declared in this package whenever possible. When an
extension needs its own category, declare it once at startup with
Register(code, description); codes are unique and reported to the client in
the ABCI response.

Create errors with ErrXyz.New / ErrXyz.Newf or wrap them with Wrap / Wrapf
at the point of creation so that a stack trace is attached. Only the most
inner wrap records the stack trace.

	%s   the error message
	%+v  the message together with the stack trace
*/
package errors
