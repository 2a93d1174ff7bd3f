package postgres

import (
	"Agora/internal/core/messages"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// messageViewColumns joins the participant usernames onto each message
const messageViewColumns = `
	m.id, m.sender_id, s.username, m.recipient_id, r.username, m.content, m.created_at`

const messageViewFrom = `
	FROM messages m
	JOIN users s ON s.id = m.sender_id
	JOIN users r ON r.id = m.recipient_id`

type postgresMessageRepo struct {
	db *sql.DB
}

// NewMessageRepository creates a new PostgreSQL message repository
func NewMessageRepository(db *sql.DB) messages.MessageRepository {
	return &postgresMessageRepo{db: db}
}

// Create inserts a new message and returns it with usernames resolved
func (r *postgresMessageRepo) Create(ctx context.Context, message *messages.Message) (*messages.MessageView, error) {
	query := `
		INSERT INTO messages (sender_id, recipient_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		message.SenderID, message.RecipientID, message.Content).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	view := &messages.MessageView{}
	query = fmt.Sprintf(`SELECT %s %s WHERE m.id = $1`, messageViewColumns, messageViewFrom)
	err = r.db.QueryRowContext(ctx, query, message.ID).
		Scan(&view.ID, &view.SenderID, &view.SenderName, &view.RecipientID,
			&view.RecipientName, &view.Content, &view.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back message=%d: %w", message.ID, err)
	}

	return view, nil
}

// GetByID retrieves a bare message by id
func (r *postgresMessageRepo) GetByID(ctx context.Context, id int64) (*messages.Message, error) {
	message := &messages.Message{}
	query := `SELECT id, sender_id, recipient_id, content, created_at
		FROM messages WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&message.ID, &message.SenderID, &message.RecipientID,
			&message.Content, &message.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, messages.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return message, nil
}

// GetReceived retrieves messages sent to the user, newest first
func (r *postgresMessageRepo) GetReceived(ctx context.Context, userID int64) ([]*messages.MessageView, error) {
	query := fmt.Sprintf(`SELECT %s %s
		WHERE m.recipient_id = $1
		ORDER BY m.created_at DESC, m.id DESC`, messageViewColumns, messageViewFrom)
	return r.queryViews(ctx, query, userID)
}

// GetSent retrieves messages sent by the user, newest first
func (r *postgresMessageRepo) GetSent(ctx context.Context, userID int64) ([]*messages.MessageView, error) {
	query := fmt.Sprintf(`SELECT %s %s
		WHERE m.sender_id = $1
		ORDER BY m.created_at DESC, m.id DESC`, messageViewColumns, messageViewFrom)
	return r.queryViews(ctx, query, userID)
}

// Delete removes a message by id
func (r *postgresMessageRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for message=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return messages.ErrMessageNotFound
	}

	return nil
}

// UserExists reports whether a user with this id exists
func (r *postgresMessageRepo) UserExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *postgresMessageRepo) queryViews(ctx context.Context, query string, userID int64) ([]*messages.MessageView, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for user=%d: %w", userID, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []*messages.MessageView{}
	for rows.Next() {
		view := &messages.MessageView{}
		err := rows.Scan(&view.ID, &view.SenderID, &view.SenderName,
			&view.RecipientID, &view.RecipientName, &view.Content, &view.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		result = append(result, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return result, nil
}
