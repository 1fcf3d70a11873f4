package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation    = errors.New("validation error")
	ErrService       = errors.New("model service error")
	ErrConfiguration = errors.New("configuration error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// ServiceError reports a failed call to the remote language model.
// Op names the attempted operation; Err is the cause as returned by the client.
type ServiceError struct {
	Op  string
	Err error
}

// Error returns the cause's message unchanged so that it can be shown to
// callers as the failure detail.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return e.Err.Error()
}

func (e *ServiceError) Unwrap() []error { return []error{ErrService, e.Err} }

// NewServiceError wraps err as a ServiceError for the given operation.
func NewServiceError(op string, err error) *ServiceError {
	return &ServiceError{Op: op, Err: err}
}
