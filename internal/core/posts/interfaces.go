package posts

import "context"

// PostRepository defines the interface for post data persistence.
// Every read returns posts with CommentCount computed from the live comment
// rows at query time.
type PostRepository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	GetAll(ctx context.Context) ([]*Post, error)
	GetByUser(ctx context.Context, userID int64) ([]*Post, error)
	Update(ctx context.Context, id int64, input UpdatePostInput) (*Post, error)

	// Delete removes the post's likes and comments, then the post, in one
	// transaction. Dependents go first so an aborted cascade can never
	// leave a comment pointing at a missing post.
	// Returns ErrPostNotFound when no such post exists.
	Delete(ctx context.Context, id int64) error

	// AuthorExists reports whether a user with this id exists
	AuthorExists(ctx context.Context, userID int64) (bool, error)
}

// Counters owns the stored post counters. Nothing else writes view_count or
// like_count; both adjustments are atomic at the storage level, so concurrent
// callers cannot lose updates.
type Counters interface {
	// IncrementViews adds exactly 1 to the post's view count as a single
	// storage-side read-modify-write. Returns ErrPostNotFound when the post
	// does not exist.
	IncrementViews(ctx context.Context, postID int64) error

	// ToggleLike flips whether userID has liked postID. The like state is a
	// per-(post, user) set, so repeating the call only ever flips: liking
	// twice cannot double-count. The stored like count is recomputed from
	// the set in the same transaction.
	ToggleLike(ctx context.Context, postID, userID int64) (*ToggleLikeResult, error)
}

// Service defines the interface for post business logic
type Service interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// GetPost bundles two effects: it increments the view count, then
	// serves the post through the read cache. The counter bump comes first
	// and invalidates, so the value returned (and cached) already reflects
	// this view.
	GetPost(ctx context.Context, id int64) (*Post, error)

	GetAllPosts(ctx context.Context) ([]*Post, error)
	GetUserPosts(ctx context.Context, userID int64) ([]*Post, error)
	UpdatePost(ctx context.Context, id, actorID int64, input UpdatePostInput) (*Post, error)
	DeletePost(ctx context.Context, id, actorID int64) error
	ToggleLike(ctx context.Context, id, actorID int64) (*ToggleLikeResult, error)
}
