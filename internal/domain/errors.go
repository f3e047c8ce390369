package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrValidation      = errors.New("validation failed")
	ErrIOFailure       = errors.New("io failure")
)

// InvalidArgumentError is returned when a constructor or call receives a value
// that violates a model invariant. No partial object is created.
type InvalidArgumentError struct {
	Field   string // Offending field or parameter
	Message string // Human-readable constraint
}

func (e *InvalidArgumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArg(field, message string) error {
	return &InvalidArgumentError{Field: field, Message: message}
}

// ValidationError represents persisted content that is malformed or missing
// required fields
type ValidationError struct {
	Message string
	Err     error // Underlying parse failure, if any
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("validation: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IOFailureError represents a storage medium that could not be read or written
type IOFailureError struct {
	Op   string // Operation: "read", "write", "delete", "list"
	Path string
	Err  error
}

func (e *IOFailureError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("io %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("io %s: %v", e.Op, e.Err)
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}

func (e *IOFailureError) Is(target error) bool {
	return target == ErrIOFailure
}
