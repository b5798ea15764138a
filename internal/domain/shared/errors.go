// Package shared contains common domain errors used across the gradebook
// packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base error kinds that can be used for error checking with errors.Is().
var (
	// ErrNotFound is returned when a storage location or a student is missing.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when user input is rejected before mutation.
	ErrValidation = errors.New("validation error")

	// ErrInvalidFormat is returned when persisted content cannot be parsed
	// into the expected structure.
	ErrInvalidFormat = errors.New("invalid format")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "store"
	Op      string // Operation that failed, e.g., "Find", "Load"
	Kind    error  // Base error kind for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidFormat checks if the error reports unparseable persisted content.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// Kind returns the base error kind carried by err, or nil when err does not
// belong to any known kind.
func Kind(err error) error {
	switch {
	case err == nil:
		return nil
	case IsNotFound(err):
		return ErrNotFound
	case IsValidation(err):
		return ErrValidation
	case IsInvalidFormat(err):
		return ErrInvalidFormat
	default:
		return nil
	}
}
