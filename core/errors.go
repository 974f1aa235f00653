/*
Package core holds definitions shared by all packages of mdtree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
)

// Error codes. They double as process exit codes for the command line tool.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // input does not exist
	EINVALID  int = 123 // invalid argument or configuration
	EIO       int = 124 // reading or writing a stream failed
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EIO:
		return "i/o error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type codedError struct {
	error
	code int
	msg  string
}

func (e codedError) Unwrap() error {
	return e.error
}

func (e codedError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e codedError) ErrorCode() int {
	return e.code
}

func (e codedError) UserMessage() string {
	return e.msg
}

var _ AppError = codedError{}

// WrapError wraps err, attaching an error code and a user message.
// A nil err is replaced by a generic error for code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{err, code, fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return codedError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// Code returns the code associated with an error.
// Errors without a code report EINTERNAL, nil reports NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If none is found, the generic text for the error's code is returned.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
