package tags

import (
	"errors"
	"fmt"
)

// Sentinel errors for tag operations
var (
	// ErrTagNotFound is returned when no tag matches the requested id
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagInUse is returned when deleting a tag still attached to posts
	// Distinguished from generic failures so callers can render a
	// "cannot delete - in use" response instead of an error page
	ErrTagInUse = errors.New("tag is attached to existing posts")

	// ErrTagNameTaken is returned when another tag already has the name
	ErrTagNameTaken = errors.New("tag name already taken")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error signals a missing tag
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTagNotFound)
}

// IsConflict checks if error signals a referential or uniqueness conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrTagInUse) || errors.Is(err, ErrTagNameTaken)
}
