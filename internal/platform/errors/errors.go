// Package errors is the project error type, imported as perr.
// An *Error pairs a caller-safe message with an ErrorCode, an optional
// request field and the underlying cause, which never reaches the wire.
package errors

import (
	stderrs "errors"
	"fmt"
)

// ErrNotFound is returned by lookups that find nothing
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is the structured error carried through services to transports
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Code is the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending request field, or ""
func (e *Error) Field() string { return e.field }

// Wire is the error as written in response envelopes
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// ToWire keeps the message and field and drops the cause
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom renders any error; errors from outside this package are ErrorCodeUnknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// As returns the outermost *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// Root follows Unwrap to the innermost cause
func Root(err error) error {
	for {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// CodeOf is the code of the outermost *Error, or ErrorCodeUnknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether CodeOf(err) is code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is the response status for err
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField tags err with a request field. The *Error is copied, so shared
// sentinels stay untouched; other errors are returned as is.
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	tagged := *e
	tagged.field = field
	return &tagged
}

// New builds an *Error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error { return New(code, fmt.Sprintf(format, a...)) }

// Wrap attaches code and msg to cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf is Wrap with a formatted message
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return Wrap(cause, code, fmt.Sprintf(format, a...))
}

func newfFor(code ErrorCode) func(string, ...any) error {
	return func(format string, a ...any) error { return Newf(code, format, a...) }
}

// Shorthands for the common codes
var (
	NotFoundf    = newfFor(ErrorCodeNotFound)
	InvalidArgf  = newfFor(ErrorCodeInvalidArgument)
	JSONErrf     = newfFor(ErrorCodeJSON)
	PanicErrf    = newfFor(ErrorCodePanic)
	Conflictf    = newfFor(ErrorCodeConflict)
	Unavailablef = newfFor(ErrorCodeUnavailable)
	Internalf    = newfFor(ErrorCodeUnknown)
)
