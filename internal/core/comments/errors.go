package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the referenced post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorNotFound indicates the commenting user doesn't exist
	ErrAuthorNotFound = errors.New("author not found")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrNotCommentAuthor indicates the user is not the comment's author
	ErrNotCommentAuthor = errors.New("not the comment author")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrAuthorNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentEmpty)
}
