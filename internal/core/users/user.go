package users

import (
	"time"
)

// User is an account in the Agora database. The password is stored as-is and
// compared on login; it is never serialized in responses.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password"`
	Username     string    `json:"username" db:"username"`
	ProfileImage string    `json:"profileImage,omitempty" db:"profile_image"`
	Bio          string    `json:"bio,omitempty" db:"bio"`
	ID           int64     `json:"id" db:"id"`
}

// SignupRequest is the input for creating a new account
type SignupRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

// UpdateUserInput carries the mutable profile fields.
// Nil means "leave this field unchanged"; an empty string clears it.
type UpdateUserInput struct {
	Username     *string `json:"username,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}
