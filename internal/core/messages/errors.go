package messages

import "errors"

var (
	// ErrMessageNotFound indicates the requested message doesn't exist
	ErrMessageNotFound = errors.New("message not found")

	// ErrSenderNotFound indicates the sending user doesn't exist
	ErrSenderNotFound = errors.New("sender not found")

	// ErrRecipientNotFound indicates the receiving user doesn't exist
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrContentEmpty indicates the message body is empty
	ErrContentEmpty = errors.New("message content is required")

	// ErrNotParticipant indicates the user is neither the sender nor the
	// recipient of the message
	ErrNotParticipant = errors.New("not a participant in this message")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMessageNotFound) ||
		errors.Is(err, ErrSenderNotFound) ||
		errors.Is(err, ErrRecipientNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentEmpty)
}
