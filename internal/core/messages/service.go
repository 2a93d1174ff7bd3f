package messages

import (
	"context"
	"log/slog"
	"strings"
)

type messageService struct {
	repo   MessageRepository
	logger *slog.Logger
}

// NewService creates a new message service
func NewService(repo MessageRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &messageService{
		repo:   repo,
		logger: logger,
	}
}

// SendMessage validates both participants and stores the message
func (s *messageService) SendMessage(ctx context.Context, req SendMessageRequest) (*MessageView, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentEmpty
	}

	senderExists, err := s.repo.UserExists(ctx, req.SenderID)
	if err != nil {
		return nil, err
	}
	if !senderExists {
		return nil, ErrSenderNotFound
	}

	recipientExists, err := s.repo.UserExists(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if !recipientExists {
		return nil, ErrRecipientNotFound
	}

	view, err := s.repo.Create(ctx, &Message{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("message sent", "messageID", view.ID,
		"senderID", req.SenderID, "recipientID", req.RecipientID)
	return view, nil
}

// GetReceived returns the user's received messages, newest first
func (s *messageService) GetReceived(ctx context.Context, userID int64) ([]*MessageView, error) {
	return s.repo.GetReceived(ctx, userID)
}

// GetSent returns the user's sent messages, newest first
func (s *messageService) GetSent(ctx context.Context, userID int64) ([]*MessageView, error) {
	return s.repo.GetSent(ctx, userID)
}

// DeleteMessage removes the message if the actor is a participant
func (s *messageService) DeleteMessage(ctx context.Context, id, actorID int64) error {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message.SenderID != actorID && message.RecipientID != actorID {
		return ErrNotParticipant
	}

	return s.repo.Delete(ctx, id)
}
