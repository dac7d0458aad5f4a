package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the sentinel for all simulation input validation
// failures. Match with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError describes which simulation parameter was rejected and why.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// NewParameterError creates a ParameterError for the given field.
func NewParameterError(field, reason string) *ParameterError {
	return &ParameterError{Field: field, Reason: reason}
}
