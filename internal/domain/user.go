package domain

import (
	"context"
	"net/mail"
	"strings"
	"time"
)

// User represents a registered account
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a new User instance
func NewUser(email, passwordHash string) *User {
	return &User{
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewValidationError("email is invalid")
	}
	if u.PasswordHash == "" {
		return NewValidationError("password is required")
	}
	return nil
}

// RefreshToken is the single live refresh token of a user.
type RefreshToken struct {
	ID           int64
	UserID       int64
	RefreshToken string
	UpdatedAt    time.Time
}

// TokenPair is what a successful login or reissue hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// RefreshTokenRepository stores one refresh token per user.
type RefreshTokenRepository interface {
	// SaveOrUpdate inserts the user's token or overwrites the existing one.
	SaveOrUpdate(ctx context.Context, userID int64, token string) error
	GetByUserID(ctx context.Context, userID int64) (*RefreshToken, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}
