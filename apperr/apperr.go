// Package apperr defines error values shared by the service layer and
// the API boundary.
package apperr

import "strings"

// ValidationError reports every rule an input violated, not just the
// first, so callers can surface the full list to the client.
type ValidationError struct {
	Violations []string
}

// NewValidation builds a ValidationError from the given violations.
func NewValidation(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
