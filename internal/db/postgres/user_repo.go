package postgres

import (
	"Agora/internal/core/users"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (email, password, username, profile_image, bio)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Password, user.Username, user.ProfileImage, user.Bio).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		// The unique index on email is the last line of defense against a
		// signup race; the service-level existence check cannot see an
		// uncommitted concurrent insert.
		if isUniqueViolation(err, "users_email_key") {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `SELECT id, email, password, username, profile_image, bio, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	query := `SELECT id, email, password, username, profile_image, bio, created_at, updated_at
		FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// ExistsByEmail reports whether an account with this email exists
func (r *postgresUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// Update applies the provided profile fields; nil fields are left unchanged
func (r *postgresUserRepo) Update(ctx context.Context, id int64, input users.UpdateUserInput) (*users.User, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argNum := 1

	if input.Username != nil {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argNum))
		args = append(args, *input.Username)
		argNum++
	}
	if input.ProfileImage != nil {
		setClauses = append(setClauses, fmt.Sprintf("profile_image = NULLIF($%d, '')", argNum))
		args = append(args, *input.ProfileImage)
		argNum++
	}
	if input.Bio != nil {
		setClauses = append(setClauses, fmt.Sprintf("bio = NULLIF($%d, '')", argNum))
		args = append(args, *input.Bio)
		argNum++
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, email, password, username, profile_image, bio, created_at, updated_at`,
		strings.Join(setClauses, ", "), argNum)

	return r.scanUser(r.db.QueryRowContext(ctx, query, args...))
}

// Delete removes a user and everything that references them. The deletes run
// inside one transaction, dependents strictly before the user row, so an
// abort at any step leaves the graph intact and a commit leaves no row
// pointing at the removed user.
func (r *postgresUserRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction for user=%d: %w", id, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback user delete",
				slog.Int64("userID", id),
				slog.String("error", err.Error()),
			)
		}
	}()

	// 1. Messages the user sent or received
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM messages WHERE sender_id = $1 OR recipient_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete messages for user=%d: %w", id, err)
	}

	// 2. Comments the user authored anywhere
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM comments WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comments for user=%d: %w", id, err)
	}

	// 3. Likes the user placed on other posts, keeping those posts' stored
	// like counts equal to their like-set cardinality
	rows, err := tx.QueryContext(ctx,
		`DELETE FROM post_likes WHERE user_id = $1 RETURNING post_id`, id)
	if err != nil {
		return fmt.Errorf("failed to delete likes for user=%d: %w", id, err)
	}
	likedPostIDs, err := collectIDs(rows)
	if err != nil {
		return fmt.Errorf("failed to read unliked post ids for user=%d: %w", id, err)
	}
	if len(likedPostIDs) > 0 {
		if _, err := tx.ExecContext(ctx, `
			UPDATE posts
			SET like_count = (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = posts.id)
			WHERE id = ANY($1)`, pq.Array(likedPostIDs)); err != nil {
			return fmt.Errorf("failed to recount likes for user=%d: %w", id, err)
		}
	}

	// 4. The user's own posts, each with its dependents first
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM post_likes
		WHERE post_id IN (SELECT id FROM posts WHERE user_id = $1)`, id); err != nil {
		return fmt.Errorf("failed to delete post likes for user=%d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM comments
		WHERE post_id IN (SELECT id FROM posts WHERE user_id = $1)`, id); err != nil {
		return fmt.Errorf("failed to delete post comments for user=%d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM posts WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete posts for user=%d: %w", id, err)
	}

	// 5. The user itself
	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for user=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user delete for user=%d: %w", id, err)
	}

	return nil
}

func (r *postgresUserRepo) scanUser(row *sql.Row) (*users.User, error) {
	user := &users.User{}
	var profileImage, bio sql.NullString

	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Username,
		&profileImage, &bio, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.ProfileImage = profileImage.String
	user.Bio = bio.String
	return user, nil
}

// collectIDs drains a single-column id result set
func collectIDs(rows *sql.Rows) ([]int64, error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// isUniqueViolation reports whether err is a postgres unique violation on the
// named constraint
func isUniqueViolation(err error, constraint string) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == constraint
}
