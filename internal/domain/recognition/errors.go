package recognition

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("recognition not found")

// ValidationError reports caller-supplied input that is missing a required
// field or violates a type constraint. Handlers map it to a client error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
