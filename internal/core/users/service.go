package users

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
)

type userService struct {
	repo      UserRepository
	postCache PostCacheInvalidator
	logger    *slog.Logger
}

// NewUserService creates a new user service. postCache may be nil when the
// post read cache is disabled.
func NewUserService(repo UserRepository, postCache PostCacheInvalidator, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:      repo,
		postCache: postCache,
		logger:    logger,
	}
}

// Signup creates a new account. Fails with ErrEmailTaken when the email is
// already registered; exactly one account per email can ever exist because
// the repository also enforces uniqueness at the storage level.
func (s *userService) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := s.validateSignup(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	user := &User{
		Email:        req.Email,
		Password:     req.Password,
		Username:     req.Username,
		ProfileImage: req.ProfileImage,
		Bio:          req.Bio,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "userID", created.ID, "email", created.Email)
	return created, nil
}

// Login verifies the email/password pair and returns the account.
// Both an unknown email and a wrong password fail with ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by id
func (s *userService) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by their email address
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, NewValidationError("email", "email is required")
	}
	return s.repo.GetByEmail(ctx, email)
}

// UpdateUser applies the provided profile fields
func (s *userService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*User, error) {
	if input.Username != nil && strings.TrimSpace(*input.Username) == "" {
		return nil, NewValidationError("username", "username cannot be empty")
	}
	return s.repo.Update(ctx, id, input)
}

// DeleteUser removes the account and cascades over everything it owns
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// The cascade removed the user's posts and comments on other posts
	if s.postCache != nil {
		s.postCache.InvalidateAll()
	}

	s.logger.Info("user deleted", "userID", id)
	return nil
}

func (s *userService) validateSignup(req SignupRequest) error {
	if req.Email == "" {
		return NewValidationError("email", "email is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return NewValidationError("email", "invalid email address")
	}
	if req.Password == "" {
		return NewValidationError("password", "password is required")
	}
	if strings.TrimSpace(req.Username) == "" {
		return NewValidationError("username", "username is required")
	}
	return nil
}
