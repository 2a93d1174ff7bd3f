package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when a post lookup finds no matching record
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorNotFound is returned when the posting user does not exist
	ErrAuthorNotFound = errors.New("author not found")

	// ErrNotPostOwner is returned when a user tries to modify or delete a
	// post they do not own
	ErrNotPostOwner = errors.New("not the post owner")
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
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrAuthorNotFound)
}
