package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is the stable machine-readable code returned to clients.
type ErrorCode string

const (
	// Common errors
	ErrInvalidInput              ErrorCode = "C-001"
	ErrInvalidSignatureOrExpired ErrorCode = "C-004"
	ErrRefreshTokenNotFound      ErrorCode = "C-006"
	ErrRefreshTokenMismatch      ErrorCode = "C-007"
	ErrInvalidTokenType          ErrorCode = "C-011"
	ErrMalformedToken            ErrorCode = "C-012"

	// Server errors
	ErrInternal       ErrorCode = "S-001"
	ErrAIServiceError ErrorCode = "S-003"

	// User errors
	ErrEmailDuplicated  ErrorCode = "U-001"
	ErrUserNotFound     ErrorCode = "U-002"
	ErrPasswordMismatch ErrorCode = "U-003"

	// Resource errors
	ErrNotFound   ErrorCode = "N-000"
	ErrBadRequest ErrorCode = "N-001"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code, so the package-level
// sentinels below can be used with errors.Is.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrorNotFound                  = NewError(ErrNotFound, "Resource not found", nil)
	ErrorBadRequest                = NewError(ErrBadRequest, "Bad request", nil)
	ErrorInvalidInput              = NewError(ErrInvalidInput, "Invalid input value", nil)
	ErrorMalformedToken            = NewError(ErrMalformedToken, "Malformed token", nil)
	ErrorInvalidTokenType          = NewError(ErrInvalidTokenType, "Invalid token type", nil)
	ErrorInvalidSignatureOrExpired = NewError(ErrInvalidSignatureOrExpired, "Invalid token signature or token expired", nil)
	ErrorRefreshTokenNotFound      = NewError(ErrRefreshTokenNotFound, "Refresh token not found", nil)
	ErrorRefreshTokenMismatch      = NewError(ErrRefreshTokenMismatch, "Refresh token does not match", nil)
	ErrorEmailDuplicated           = NewError(ErrEmailDuplicated, "Email already exists", nil)
	ErrorUserNotFound              = NewError(ErrUserNotFound, "User not found", nil)
	ErrorPasswordMismatch          = NewError(ErrPasswordMismatch, "Password does not match", nil)
	ErrorInternal                  = NewError(ErrInternal, "Internal server error", nil)
	ErrorAIService                 = NewError(ErrAIServiceError, "AI service error", nil)
)

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewBadRequestError(message string) *DomainError {
	return NewError(ErrBadRequest, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewAIServiceError(err error) *DomainError {
	return NewError(ErrAIServiceError, "Failed to generate quiz with AI service", err)
}

func NewMalformedTokenError(err error) *DomainError {
	return NewError(ErrMalformedToken, "Malformed token", err)
}

func NewInvalidSignatureOrExpiredError(err error) *DomainError {
	return NewError(ErrInvalidSignatureOrExpired, "Invalid token signature or token expired", err)
}

func NewInvalidTokenTypeError(got string) *DomainError {
	return NewError(ErrInvalidTokenType, fmt.Sprintf("Invalid token type: %q", got), nil)
}

func NewUserNotFoundError() *DomainError {
	return NewError(ErrUserNotFound, "User not found", nil)
}

func NewEmailDuplicatedError(email string) *DomainError {
	return NewError(ErrEmailDuplicated, fmt.Sprintf("Email already exists: %s", email), nil)
}

func NewPasswordMismatchError() *DomainError {
	return NewError(ErrPasswordMismatch, "Password does not match", nil)
}

func NewArticleNotFoundError(ref any) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("Article not found: %v", ref), nil)
}

func NewQuizNotFoundError(articleID int64) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("No quiz found for article: %d", articleID), nil)
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by request validation and maps to C-001.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}
