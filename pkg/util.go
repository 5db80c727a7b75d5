package pkg

import (
	"errors"
	"fmt"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() []error {
	if e.orig == nil {
		return []error{e.code}
	}
	return []error{e.orig, e.code}
}

// WrapErrorf wraps orig with a message and an error code. errors.Is matches both orig and code.
func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

func (e *Error) Message() string {
	return e.msg
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

// routing error kinds
var (
	ErrUnknownLocation     = errors.New("unknown location")
	ErrNoPathFound         = errors.New("no path found")
	ErrSearchExhausted     = errors.New("search exhausted")
	ErrMalformedGraphInput = errors.New("malformed graph input")
)

var MessageInternalServerError string = "internal server error"
