// Package domain contains the core domain models and types.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidRequest indicates the analysis request failed validation.
	ErrInvalidRequest = errors.New("invalid analysis request")

	// ErrInvalidRecord indicates a result record does not match the stored schema.
	ErrInvalidRecord = errors.New("invalid analysis record")

	// ErrStoreUnavailable indicates no datastore is configured or reachable.
	ErrStoreUnavailable = errors.New("datastore unavailable")

	// ErrUnknownCollection indicates a write to a collection the store does not know.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// AnalysisError wraps an error with additional context.
type AnalysisError struct {
	// Op is the operation that failed.
	Op string

	// Err is the underlying error.
	Err error

	// Retryable indicates if the operation can be retried.
	Retryable bool
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// WrapError creates a new AnalysisError with context.
func WrapError(op string, err error, retryable bool) *AnalysisError {
	return &AnalysisError{
		Op:        op,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Retryable
	}
	return false
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
