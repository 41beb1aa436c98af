package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news-quiz/internal/config"
	"news-quiz/internal/domain"
	"news-quiz/internal/dto"
	"news-quiz/internal/logger"
	"news-quiz/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenService issues and validates session tokens.
type TokenService interface {
	// CreateToken mints an access/refresh pair for user.
	CreateToken(user *domain.User) (*domain.TokenPair, error)
	// ValidateToken checks an access token without touching the database.
	ValidateToken(tokenString string) error
	// ParseAccessToken validates an access token and returns its user id.
	ParseAccessToken(tokenString string) (int64, error)
	// ParseRefreshToken validates a refresh token and returns its user id.
	ParseRefreshToken(tokenString string) (int64, error)
	// GetAuthenticatedUser resolves the account an access token belongs to.
	GetAuthenticatedUser(ctx context.Context, tokenString string) (*domain.User, error)
}

type tokenServiceImpl struct {
	cfg      config.JWTConfig
	userRepo domain.UserRepository
	now      func() time.Time
}

// NewTokenService creates a TokenService signing with cfg.SecretKey.
func NewTokenService(cfg config.JWTConfig, userRepo domain.UserRepository) TokenService {
	return &tokenServiceImpl{cfg: cfg, userRepo: userRepo, now: time.Now}
}

func (s *tokenServiceImpl) CreateToken(user *domain.User) (*domain.TokenPair, error) {
	if user == nil {
		return nil, domain.NewInternalError("cannot create token for nil user", nil)
	}
	access, err := s.createJWT(user.ID, s.cfg.AccessTokenTTL, domain.TokenTypeAccess)
	if err != nil {
		return nil, domain.NewInternalError("failed to create access token", err)
	}
	refresh, err := s.createJWT(user.ID, s.cfg.RefreshTokenTTL, domain.TokenTypeRefresh)
	if err != nil {
		return nil, domain.NewInternalError("failed to create refresh token", err)
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *tokenServiceImpl) createJWT(userID int64, ttl time.Duration, tokenType string) (string, error) {
	now := s.now()
	claims := dto.AuthClaims{
		UserID:    &userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// parse verifies signature and expiry. A token that is not structurally a
// JWT is malformed; every other failure is a signature or expiry error.
func (s *tokenServiceImpl) parse(tokenString string) (*dto.AuthClaims, error) {
	if tokenString == "" {
		return nil, domain.NewMalformedTokenError(errors.New("token is empty"))
	}

	claims := &dto.AuthClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, domain.NewMalformedTokenError(err)
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, domain.NewInvalidSignatureOrExpiredError(err)
	}
	return claims, nil
}

func (s *tokenServiceImpl) parseTyped(tokenString, want string) (*dto.AuthClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != want {
		return nil, domain.NewInvalidTokenTypeError(claims.TokenType)
	}
	return claims, nil
}

func (s *tokenServiceImpl) ValidateToken(tokenString string) error {
	_, err := s.parseTyped(tokenString, domain.TokenTypeAccess)
	return err
}

func (s *tokenServiceImpl) ParseAccessToken(tokenString string) (int64, error) {
	claims, err := s.parseTyped(tokenString, domain.TokenTypeAccess)
	if err != nil {
		return 0, err
	}
	if claims.UserID == nil {
		return 0, domain.NewMalformedTokenError(errors.New("token has no id claim"))
	}
	return *claims.UserID, nil
}

func (s *tokenServiceImpl) ParseRefreshToken(tokenString string) (int64, error) {
	claims, err := s.parseTyped(tokenString, domain.TokenTypeRefresh)
	if err != nil {
		return 0, err
	}
	if claims.UserID == nil {
		return 0, domain.NewMalformedTokenError(errors.New("token has no id claim"))
	}
	return *claims.UserID, nil
}

func (s *tokenServiceImpl) GetAuthenticatedUser(ctx context.Context, tokenString string) (*domain.User, error) {
	userID, err := s.ParseAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load authenticated user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError()
	}
	return user, nil
}
