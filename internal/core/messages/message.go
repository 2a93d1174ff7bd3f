package messages

import (
	"time"
)

// Message is a private note between two users
type Message struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Content     string    `json:"content" db:"content"`
	ID          int64     `json:"id" db:"id"`
	SenderID    int64     `json:"senderId" db:"sender_id"`
	RecipientID int64     `json:"recipientId" db:"recipient_id"`
}

// MessageView is a message with the participant usernames resolved,
// the shape returned to callers
type MessageView struct {
	CreatedAt     time.Time `json:"createdAt"`
	SenderName    string    `json:"senderName"`
	RecipientName string    `json:"recipientName"`
	Content       string    `json:"content"`
	ID            int64     `json:"id"`
	SenderID      int64     `json:"senderId"`
	RecipientID   int64     `json:"recipientId"`
}

// SendMessageRequest is the input for sending a message
type SendMessageRequest struct {
	SenderID    int64  `json:"senderId"`
	RecipientID int64  `json:"recipientId"`
	Content     string `json:"content"`
}
