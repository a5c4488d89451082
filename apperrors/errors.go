// Package apperrors defines the error kinds surfaced by the workflow
// services: NotFound, InvalidState and ProviderFailure. Handlers map these
// to HTTP statuses; everything else is treated as an internal error.
package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a resource does not exist or does not
// belong to the caller. Ownership mismatches are deliberately reported as
// not-found so the API never leaks the existence of other users' projects.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NotFound creates a NotFoundError for the named resource
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InvalidStateError is returned when a precondition for the requested
// workflow transition is unmet. The reason string is user-facing.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return e.Reason
}

// InvalidState creates an InvalidStateError with the given reason
func InvalidState(reason string) error {
	return &InvalidStateError{Reason: reason}
}

// IsInvalidState reports whether err is an InvalidStateError
func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}

// ProviderError wraps a failed external provider call. The workflow engine
// never retries these itself; the first error encountered is returned.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Provider wraps err as a ProviderError for the named provider
func Provider(provider string, err error) error {
	return &ProviderError{Provider: provider, Err: err}
}

// IsProvider reports whether err is a ProviderError
func IsProvider(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
