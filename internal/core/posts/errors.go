package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for post operations
var (
	// ErrPostNotFound is returned when a post is absent, unpublished and
	// not owned by the viewer, or owned by someone else on a write. The
	// same signal in all three cases keeps non-owners from probing for
	// the existence of other users' drafts.
	ErrPostNotFound = errors.New("post not found")

	// ErrTagAlreadyAttached is returned when attaching a tag twice
	ErrTagAlreadyAttached = errors.New("tag already attached to post")

	// ErrTagNotAttached is returned when detaching a tag that isn't attached
	ErrTagNotAttached = errors.New("tag not attached to post")
)

// ValidationError represents a validation error with field context.
// Carried back to the boundary so the form can be redisplayed with the
// user's input intact.
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

// IsNotFound checks if error signals a missing or invisible post
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsConflict checks if error signals a tag association conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrTagAlreadyAttached) || errors.Is(err, ErrTagNotAttached)
}
