package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError is a field-scoped validation failure. The admin API
// reports at most one per request: the pipeline stops at the first field
// that fails, in a fixed field order.
type ValidationError struct {
	Field   string
	Message string
}

// Error renders the error in the external response shape, e.g.
// `title` error: The title is not unique.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("`%s` error: %s", e.Field, e.Message)
}
