package messages

import "context"

// MessageRepository defines the interface for message data persistence.
// The view queries join the participant usernames in a single query.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) (*MessageView, error)
	GetByID(ctx context.Context, id int64) (*Message, error)
	GetReceived(ctx context.Context, userID int64) ([]*MessageView, error)
	GetSent(ctx context.Context, userID int64) ([]*MessageView, error)
	Delete(ctx context.Context, id int64) error
	UserExists(ctx context.Context, userID int64) (bool, error)
}

// Service defines the interface for message business logic
type Service interface {
	SendMessage(ctx context.Context, req SendMessageRequest) (*MessageView, error)
	GetReceived(ctx context.Context, userID int64) ([]*MessageView, error)
	GetSent(ctx context.Context, userID int64) ([]*MessageView, error)

	// DeleteMessage removes the message; the actor must be the sender or
	// the recipient.
	DeleteMessage(ctx context.Context, id, actorID int64) error
}
