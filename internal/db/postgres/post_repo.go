package postgres

import (
	"Agora/internal/core/posts"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// postColumns selects the stored post fields plus the derived comment count.
// The count is a scalar subquery so every read reflects the live comment rows
// at query time; it is never stored or cached on its own.
const postColumns = `
	p.id, p.user_id, p.title, p.content, p.view_count, p.like_count,
	p.created_at, p.updated_at,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.PostRepository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, view_count, like_count, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, post.UserID, post.Title, post.Content).
		Scan(&post.ID, &post.ViewCount, &post.LikeCount, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts p WHERE p.id = $1`, postColumns)
	return scanPost(r.db.QueryRowContext(ctx, query, id))
}

// GetAll retrieves every post, newest first
func (r *postgresPostRepo) GetAll(ctx context.Context) ([]*posts.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts p ORDER BY p.created_at DESC, p.id DESC`, postColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	return scanPosts(rows)
}

// GetByUser retrieves one user's posts, newest first
func (r *postgresPostRepo) GetByUser(ctx context.Context, userID int64) ([]*posts.Post, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM posts p WHERE p.user_id = $1 ORDER BY p.created_at DESC, p.id DESC`,
		postColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts for user=%d: %w", userID, err)
	}
	return scanPosts(rows)
}

// Update applies the provided fields; nil fields are left unchanged
func (r *postgresPostRepo) Update(ctx context.Context, id int64, input posts.UpdatePostInput) (*posts.Post, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argNum := 1

	if input.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argNum))
		args = append(args, *input.Title)
		argNum++
	}
	if input.Content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", argNum))
		args = append(args, *input.Content)
		argNum++
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE posts p
		SET %s
		WHERE p.id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), argNum, postColumns)

	return scanPost(r.db.QueryRowContext(ctx, query, args...))
}

// Delete removes a post together with its likes and comments. Dependents are
// deleted first inside the transaction: if the cascade dies partway the
// rollback restores everything, and there is no interleaving in which a
// comment survives its post.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction for post=%d: %w", id, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback post delete",
				slog.Int64("postID", id),
				slog.String("error", err.Error()),
			)
		}
	}()

	// 1. Likes
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete likes for post=%d: %w", id, err)
	}

	// 2. Comments
	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comments for post=%d: %w", id, err)
	}

	// 3. The post itself
	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for post=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post delete for post=%d: %w", id, err)
	}

	return nil
}

// AuthorExists reports whether a user with this id exists
func (r *postgresPostRepo) AuthorExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func scanPost(row *sql.Row) (*posts.Post, error) {
	post := &posts.Post{}
	err := row.Scan(&post.ID, &post.UserID, &post.Title, &post.Content,
		&post.ViewCount, &post.LikeCount, &post.CreatedAt, &post.UpdatedAt,
		&post.CommentCount)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	return post, nil
}

func scanPosts(rows *sql.Rows) ([]*posts.Post, error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []*posts.Post{}
	for rows.Next() {
		post := &posts.Post{}
		err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content,
			&post.ViewCount, &post.LikeCount, &post.CreatedAt, &post.UpdatedAt,
			&post.CommentCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return result, nil
}
