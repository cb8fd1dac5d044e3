package envconf

import (
	"errors"
	"fmt"
)

var (
	// ErrRequired is wrapped by Get when a required variable is not set
	ErrRequired = errors.New("required variable is not set")
	// ErrConversion is wrapped by Get when a number, integer or duration variable does not parse
	ErrConversion = errors.New("cannot convert value")
	// ErrParse is wrapped by Get when a JSON or YAML variable does not parse
	ErrParse = errors.New("is not valid structured data")
	// ErrRead is wrapped by Get when the Reader itself fails
	ErrRead = errors.New("unable to read")
)

// Error is returned by Get.  Err wraps one of the package sentinels and, when there is
// one, the underlying parser or reader error, so both errors.Is and errors.As see them.
type Error struct {
	Key string
	Err error
}

func newError(key string, kind error, cause error) *Error {
	if cause == nil {
		return &Error{Key: key, Err: kind}
	}
	return &Error{Key: key, Err: fmt.Errorf("%w: %w", kind, cause)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("env %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
