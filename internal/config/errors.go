package config

import (
	"errors"
	"fmt"
)

// Settings validation errors.
var (
	// ErrMissingField indicates a required settings field is absent.
	ErrMissingField = errors.New("config: missing required field")

	// ErrInvalidValue indicates a field is present but out of range or malformed.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrDuplicateBody indicates two planets share a name.
	ErrDuplicateBody = errors.New("config: duplicate body name")
)

// Error wraps a validation error with the path of the offending field.
type Error struct {
	Field   string
	Wrapped error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Wrapped, e.Field)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func fieldErr(err error, format string, args ...any) *Error {
	return &Error{Field: fmt.Sprintf(format, args...), Wrapped: err}
}
