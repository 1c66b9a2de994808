package store

import (
	"errors"
	"fmt"
)

// Code classifies a persistence failure
type Code string

const (
	// CodeDuplicate means a uniqueness constraint was violated
	CodeDuplicate Code = "duplicate"
	// CodeInvalid means the record was rejected by a data constraint
	CodeInvalid Code = "invalid"
	// CodeInternal covers everything else (connectivity, unknown failures)
	CodeInternal Code = "internal"
)

// Error is the error returned by inserters
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a persistence error with a formatted message
func NewError(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf returns the code of a persistence error, or CodeInternal for any other error
func CodeOf(err error) Code {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return CodeInternal
}

// IsDuplicate reports whether err is a duplicate-key failure
func IsDuplicate(err error) bool {
	return err != nil && CodeOf(err) == CodeDuplicate
}
