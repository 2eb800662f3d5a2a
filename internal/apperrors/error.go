package apperrors

import (
	"errors"
	"fmt"
)

// Error carries an error code alongside the human-readable message surfaced
// to clients.
type Error struct {
	code    string
	message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

// Code returns the error code.
func (e *Error) Code() string {
	return e.code
}

// Message returns the client-facing message without any wrapped cause.
func (e *Error) Message() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.err
}

// New creates an application error with a code and a client-facing message.
func New(code, message string) *Error {
	return &Error{code: code, message: message}
}

// Newf creates an application error with a formatted message.
func Newf(code, format string, args ...interface{}) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a message to an existing error. If the error is already an
// application error its code is preserved.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{code: appErr.Code(), message: message, err: err}
	}
	return &Error{code: CodeInternal, message: message, err: err}
}

// CodeOf extracts the code from an error, defaulting to CodeInternal.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code()
	}
	return CodeInternal
}

// MessageOf extracts the client-facing message from an error. Internal
// errors deliberately surface a generic message.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return "Unknown error has occurred."
}

// IsCode reports whether the error carries the given code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
