package comments

import (
	"context"
	"log/slog"
	"strings"
)

type commentService struct {
	repo      CommentRepository
	postCache PostCacheInvalidator
	logger    *slog.Logger
}

// NewService creates a new comment service. postCache may be nil when the
// post read cache is disabled.
func NewService(repo CommentRepository, postCache PostCacheInvalidator, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:      repo,
		postCache: postCache,
		logger:    logger,
	}
}

// CreateComment validates the references and stores a new comment
func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentEmpty
	}

	postExists, err := s.repo.PostExists(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !postExists {
		return nil, ErrPostNotFound
	}

	authorExists, err := s.repo.AuthorExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !authorExists {
		return nil, ErrAuthorNotFound
	}

	comment, err := s.repo.Create(ctx, &Comment{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	// The post's comment count changed
	if s.postCache != nil {
		s.postCache.Invalidate(req.PostID)
	}

	s.logger.Info("comment created", "commentID", comment.ID, "postID", comment.PostID)
	return comment, nil
}

// GetCommentsByPost returns a post's comments, oldest first
func (s *commentService) GetCommentsByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	return s.repo.GetByPost(ctx, postID)
}

// UpdateComment replaces the comment body after an authorship check
func (s *commentService) UpdateComment(ctx context.Context, id, actorID int64, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentEmpty
	}

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, ErrNotCommentAuthor
	}

	return s.repo.Update(ctx, id, content)
}

// DeleteComment removes the comment after an authorship check
func (s *commentService) DeleteComment(ctx context.Context, id, actorID int64) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return ErrNotCommentAuthor
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.postCache != nil {
		s.postCache.Invalidate(comment.PostID)
	}

	s.logger.Info("comment deleted", "commentID", id, "postID", comment.PostID)
	return nil
}
