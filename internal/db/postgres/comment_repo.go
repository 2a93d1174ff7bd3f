package postgres

import (
	"Agora/internal/core/comments"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.CommentRepository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// GetByID retrieves a comment by id
func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	comment := &comments.Comment{}
	query := `SELECT id, post_id, user_id, content, created_at, updated_at
		FROM comments WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Content,
			&comment.CreatedAt, &comment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// GetByPost retrieves a post's comments, oldest first
func (r *postgresCommentRepo) GetByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `SELECT id, post_id, user_id, content, created_at, updated_at
		FROM comments WHERE post_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for post=%d: %w", postID, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []*comments.Comment{}
	for rows.Next() {
		comment := &comments.Comment{}
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID,
			&comment.Content, &comment.CreatedAt, &comment.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		result = append(result, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return result, nil
}

// Update replaces the comment body
func (r *postgresCommentRepo) Update(ctx context.Context, id int64, content string) (*comments.Comment, error) {
	comment := &comments.Comment{}
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, post_id, user_id, content, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, id, content).
		Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Content,
			&comment.CreatedAt, &comment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// Delete removes a comment by id
func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for comment=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// PostExists reports whether a post with this id exists
func (r *postgresCommentRepo) PostExists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}

// AuthorExists reports whether a user with this id exists
func (r *postgresCommentRepo) AuthorExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}
