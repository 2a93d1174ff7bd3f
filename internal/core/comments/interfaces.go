package comments

import "context"

// CommentRepository defines the interface for comment data persistence
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) (*Comment, error)
	GetByID(ctx context.Context, id int64) (*Comment, error)
	GetByPost(ctx context.Context, postID int64) ([]*Comment, error)
	Update(ctx context.Context, id int64, content string) (*Comment, error)
	Delete(ctx context.Context, id int64) error
	PostExists(ctx context.Context, postID int64) (bool, error)
	AuthorExists(ctx context.Context, userID int64) (bool, error)
}

// PostCacheInvalidator is the slice of the post read cache this package
// needs. A comment create or delete changes its post's derived comment
// count, which is part of the cached post view, so those writes must drop
// the post's cache entries before returning.
type PostCacheInvalidator interface {
	Invalidate(postID int64)
}

// Service defines the interface for comment business logic
type Service interface {
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)
	GetCommentsByPost(ctx context.Context, postID int64) ([]*Comment, error)
	UpdateComment(ctx context.Context, id, actorID int64, content string) (*Comment, error)
	DeleteComment(ctx context.Context, id, actorID int64) error
}
