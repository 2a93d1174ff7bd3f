package posts

import (
	"context"
	"log/slog"
	"strings"
)

type postService struct {
	repo     PostRepository
	counters Counters
	cache    Cache
	logger   *slog.Logger
}

// NewService creates a new post service. cache may be nil, in which case
// every read goes straight to the repository; correctness is identical, the
// cache only saves database round trips.
func NewService(repo PostRepository, counters Counters, cache Cache, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:     repo,
		counters: counters,
		cache:    cache,
		logger:   logger,
	}
}

// CreatePost validates and stores a new post
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("content", "content is required")
	}

	exists, err := s.repo.AuthorExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	post, err := s.repo.Create(ctx, &Post{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(post.ID)
	}

	s.logger.Info("post created", "postID", post.ID, "userID", post.UserID)
	return post, nil
}

// GetPost increments the view count, then serves the post. The increment is
// a write, so it invalidates before the cached read path runs; the miss that
// follows re-reads the incremented row.
func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	if err := s.counters.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(id)
	}

	return s.readPost(ctx, id)
}

// GetAllPosts returns every post, newest first, through the read cache
func (s *postService) GetAllPosts(ctx context.Context) ([]*Post, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	if list, ok := s.cache.GetList(); ok {
		return list, nil
	}

	gen := s.cache.ListGeneration()
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.PutList(gen, list)

	return list, nil
}

// GetUserPosts returns one user's posts, newest first. Not cached: per-user
// listings are not part of the read-cache contract.
func (s *postService) GetUserPosts(ctx context.Context, userID int64) ([]*Post, error) {
	return s.repo.GetByUser(ctx, userID)
}

// UpdatePost applies the provided fields after an ownership check
func (s *postService) UpdatePost(ctx context.Context, id, actorID int64, input UpdatePostInput) (*Post, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, NewValidationError("title", "title cannot be empty")
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return nil, NewValidationError("content", "content cannot be empty")
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, ErrNotPostOwner
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(id)
	}

	return updated, nil
}

// DeletePost removes the post and its dependents after an ownership check
func (s *postService) DeletePost(ctx context.Context, id, actorID int64) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return ErrNotPostOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(id)
	}

	s.logger.Info("post deleted", "postID", id, "userID", actorID)
	return nil
}

// ToggleLike flips the actor's like on the post
func (s *postService) ToggleLike(ctx context.Context, id, actorID int64) (*ToggleLikeResult, error) {
	result, err := s.counters.ToggleLike(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(id)
	}

	return result, nil
}

// readPost is the read-through path for a single post
func (s *postService) readPost(ctx context.Context, id int64) (*Post, error) {
	if s.cache == nil {
		return s.repo.GetByID(ctx, id)
	}

	if post, ok := s.cache.GetPost(id); ok {
		return post, nil
	}

	gen := s.cache.PostGeneration(id)
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.PutPost(id, gen, post)

	return post, nil
}
