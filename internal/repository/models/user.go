package models

import (
	"time"
)

// User is a row of the users table.
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// RefreshToken is a row of the refresh_tokens table.
type RefreshToken struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	RefreshToken string    `db:"refresh_token"`
	UpdatedAt    time.Time `db:"updated_at"`
}
