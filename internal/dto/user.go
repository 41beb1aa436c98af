package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    *int64 `json:"id,omitempty"`
	TokenType string `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// SignUpRequest registers a new account.
// @Description Request body for creating a user
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// SignUpResponse carries the new account id.
type SignUpResponse struct {
	UserID int64 `json:"userId"`
}

// LoginRequest authenticates with email and password.
// @Description Request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents the response containing access and refresh tokens.
// @Description Response body for authentication tokens
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ReissueRequest is optional; the refreshToken cookie takes precedence.
type ReissueRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
