package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*User, error)

	// Delete removes the user and every row that references them: messages
	// sent or received, comments they authored, their likes, and each of
	// their posts together with that post's comments and likes. The whole
	// cascade runs in one transaction so a failure never leaves the user
	// deleted with dependents behind, or dependents gone with the user kept.
	// Returns ErrUserNotFound when no such user exists.
	Delete(ctx context.Context, id int64) error
}

// PostCacheInvalidator is the slice of the post read cache this package
// needs. Deleting a user removes their posts without enumerating ids here,
// so the whole cache is dropped.
type PostCacheInvalidator interface {
	InvalidateAll()
}

// UserService defines the interface for user business logic
type UserService interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}
