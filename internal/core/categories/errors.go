package categories

import (
	"errors"
	"fmt"
)

// Sentinel errors for category operations
var (
	// ErrCategoryNotFound is returned when no category matches the requested id
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse is returned when deleting a category still referenced by posts
	ErrCategoryInUse = errors.New("category is referenced by existing posts")

	// ErrCategoryNameTaken is returned when another category already has the name
	ErrCategoryNameTaken = errors.New("category name already taken")
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

// IsNotFound checks if error signals a missing category
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

// IsConflict checks if error signals a referential or uniqueness conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrCategoryInUse) || errors.Is(err, ErrCategoryNameTaken)
}
