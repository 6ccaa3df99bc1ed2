package uuidcodec

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedValue        = errors.New("uuidcodec: malformed value")
	ErrConfigurationConflict = errors.New("uuidcodec: configuration conflict")

	// ErrInvalidOutput is returned when a serializer does not write exactly one string.
	ErrInvalidOutput = errors.New("uuidcodec: invalid serializer output")
)

type (
	baseError struct {
		category    string
		message     string
		previousErr error
	}

	// MalformedValueError is returned when text cannot be read as a UUID.
	MalformedValueError struct {
		baseError
		Input string
	}

	conflictError struct {
		baseError
	}
)

// NewMalformedValueError reports input that could not be read as a UUID.
// category names the part that failed, e.g. "token" for a value of the wrong
// wire type.
func NewMalformedValueError(category string, input string, previousErr error) *MalformedValueError {
	return &MalformedValueError{
		baseError: baseError{
			category:    category,
			message:     fmt.Sprintf("malformed uuid %q", input),
			previousErr: previousErr,
		},
		Input: input,
	}
}

func newConflictError(category string) *conflictError {
	return &conflictError{
		baseError: baseError{
			category: category,
			message:  fmt.Sprintf("%s bound more than once", category),
		},
	}
}

func (e baseError) Error() string {
	if e.previousErr == nil {
		return e.message
	}
	return fmt.Sprintf("%s (%s)", e.message, e.previousErr.Error())
}

func (e baseError) Unwrap() error {
	return e.previousErr
}

// Category is the part of the value that failed, e.g. "length" or "hex".
func (e MalformedValueError) Category() string {
	return e.category
}

func (e MalformedValueError) Is(target error) bool {
	return target == ErrMalformedValue
}

func (e conflictError) Is(target error) bool {
	return target == ErrConfigurationConflict
}
