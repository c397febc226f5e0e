package swid

import (
	"errors"
	"fmt"
)

// Status categorizes collector failures.
type Status string

const (
	// StatusNotFound indicates a software identifier could not be
	// extracted from tag content that was well-formed enough to attempt.
	StatusNotFound Status = "NOT_FOUND"

	// StatusNotSupported indicates the generator subprocess could not be
	// started (or exited unsuccessfully).
	StatusNotSupported Status = "NOT_SUPPORTED"

	// StatusFailed indicates a database query failed or a directory or
	// file could not be read.
	StatusFailed Status = "FAILED"

	// StatusUnavailable indicates event collection was requested without
	// identifiers-only mode or without a configured collector database.
	StatusUnavailable Status = "UNAVAILABLE"
)

// StatusError is the error type crossing collector package boundaries.
// It carries a Status code so callers can branch without string matching.
type StatusError struct {
	// Status identifies the error category.
	Status Status

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// NewStatusError creates a StatusError with the given code and message.
func NewStatusError(status Status, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

// WrapStatusError wraps an underlying error with a status code.
func WrapStatusError(status Status, message string, err error) *StatusError {
	return &StatusError{Status: status, Message: message, Err: err}
}

// StatusOf extracts the status code from an error chain.
// Returns StatusFailed for errors that are not StatusErrors.
func StatusOf(err error) Status {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return StatusFailed
}

// IsNotFound reports whether the error chain carries StatusNotFound.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == StatusNotFound
}

// IsNotSupported reports whether the error chain carries StatusNotSupported.
func IsNotSupported(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == StatusNotSupported
}

// IsUnavailable reports whether the error chain carries StatusUnavailable.
func IsUnavailable(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == StatusUnavailable
}
