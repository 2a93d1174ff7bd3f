package comments

import (
	"time"
)

// Comment is a reply on a post. PostID and UserID are id references resolved
// by lookup; a comment never survives its post or its author.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
}

// CreateCommentRequest is the input for creating a comment
type CreateCommentRequest struct {
	PostID  int64  `json:"postId"`
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}
