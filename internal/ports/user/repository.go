package user

import (
	"context"
	"errors"
	"time"

	"minisocial/internal/core/user"
)

var (
	// ErrDuplicate is returned when the username or email is already taken.
	// The store cannot tell which field collided, so neither can callers.
	ErrDuplicate = errors.New("username or email already taken")

	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordMismatch is returned when the confirmation password differs.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrMissingField is returned when a required registration field is empty.
	ErrMissingField = errors.New("missing required field")
)

// UserRepository is the outbound port for user storage.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
