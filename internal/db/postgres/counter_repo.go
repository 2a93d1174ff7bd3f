package postgres

import (
	"Agora/internal/core/posts"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

type postgresCounterRepo struct {
	db *sql.DB
}

// NewCounterRepository creates the PostgreSQL implementation of the post
// counters. All counter writes in the system go through this type.
func NewCounterRepository(db *sql.DB) posts.Counters {
	return &postgresCounterRepo{db: db}
}

// IncrementViews adds 1 to the post's view count. The increment happens in
// the UPDATE itself, not as a read-then-write round trip, so concurrent
// viewers serialize on the row and every call lands.
func (r *postgresCounterRepo) IncrementViews(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE posts
		SET view_count = view_count + 1, updated_at = NOW()
		WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to increment views for post=%d: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for post=%d: %w", postID, err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// ToggleLike flips userID's like on postID. Likes are rows in post_likes
// keyed (post_id, user_id); the primary key makes a double-like impossible,
// and the stored like_count is recomputed from the rows inside the same
// transaction, so it always equals the set cardinality.
func (r *postgresCounterRepo) ToggleLike(ctx context.Context, postID, userID int64) (*posts.ToggleLikeResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction for post=%d: %w", postID, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback like toggle",
				slog.Int64("postID", postID),
				slog.String("error", err.Error()),
			)
		}
	}()

	// Lock the post row first: serializes concurrent toggles on the same
	// post and confirms it exists.
	var lockedID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock post=%d: %w", postID, err)
	}

	// Try to unlike; if no row was there, this is a like.
	result, err := tx.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove like for post=%d: %w", postID, err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected for post=%d: %w", postID, err)
	}

	liked := removed == 0
	if liked {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`, postID, userID); err != nil {
			return nil, fmt.Errorf("failed to add like for post=%d: %w", postID, err)
		}
	}

	var likeCount int64
	err = tx.QueryRowContext(ctx, `
		UPDATE posts
		SET like_count = (SELECT COUNT(*) FROM post_likes WHERE post_id = $1)
		WHERE id = $1
		RETURNING like_count`, postID).Scan(&likeCount)
	if err != nil {
		return nil, fmt.Errorf("failed to recount likes for post=%d: %w", postID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit like toggle for post=%d: %w", postID, err)
	}

	return &posts.ToggleLikeResult{Liked: liked, LikeCount: likeCount}, nil
}
