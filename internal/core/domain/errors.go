package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrProgressNotFound    = errors.New("task progress not found")
	ErrTaskNotInProgress   = errors.New("task not found in progress")
	ErrApplicationNotFound = errors.New("application not found")
)

// ValidationError reports malformed or missing input. Handlers map it
// to a client error response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
