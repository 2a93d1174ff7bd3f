package posts

import (
	"time"
)

// Post is a board posting. ViewCount and LikeCount are stored counters that
// only the Counters implementation may adjust. CommentCount is derived: it is
// computed from the comments table on every read and never written anywhere.
type Post struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	ViewCount    int64     `json:"viewCount" db:"view_count"`
	LikeCount    int64     `json:"likeCount" db:"like_count"`
	CommentCount int64     `json:"commentCount" db:"-"`
}

// CreatePostRequest is the input for creating a post
type CreatePostRequest struct {
	UserID  int64  `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostInput carries the mutable post fields.
// Nil means "leave this field unchanged".
type UpdatePostInput struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ToggleLikeResult reports the like state after a toggle
type ToggleLikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
