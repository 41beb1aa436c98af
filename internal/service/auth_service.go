package service

import (
	"context"
	"errors"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService logs users in and manages their single refresh token.
type AuthService interface {
	Login(ctx context.Context, email, rawPassword string) (*domain.TokenPair, error)
	// Reissue exchanges a valid refresh token for a new pair and rotates the stored token.
	Reissue(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, userID int64) error
}

type authServiceImpl struct {
	userRepo    domain.UserRepository
	refreshRepo domain.RefreshTokenRepository
	tokens      TokenService
	tx          domain.TransactionManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	userRepo domain.UserRepository,
	refreshRepo domain.RefreshTokenRepository,
	tokens TokenService,
	tx domain.TransactionManager,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		tokens:      tokens,
		tx:          tx,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, email, rawPassword string) (*domain.TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Get().Warn("Stored password hash is unusable", zap.Int64("userID", user.ID), zap.Error(err))
		}
		return nil, domain.NewPasswordMismatchError()
	}

	pair, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("User logged in", zap.Int64("userID", user.ID))
	return pair, nil
}

func (s *authServiceImpl) Reissue(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	userID, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := s.refreshRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get refresh token", err)
	}
	if stored == nil {
		return nil, domain.ErrorRefreshTokenNotFound
	}
	if stored.RefreshToken != refreshToken {
		logger.Get().Warn("Refresh token mismatch", zap.Int64("userID", userID))
		return nil, domain.ErrorRefreshTokenMismatch
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError()
	}
	return s.issue(ctx, user)
}

// issue mints a pair and stores its refresh token as the user's only one.
func (s *authServiceImpl) issue(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	pair, err := s.tokens.CreateToken(user)
	if err != nil {
		return nil, err
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.refreshRepo.SaveOrUpdate(txCtx, user.ID, pair.RefreshToken)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to save refresh token", err)
	}
	return pair, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, userID int64) error {
	if err := s.refreshRepo.DeleteByUserID(ctx, userID); err != nil {
		return domain.NewInternalError("failed to delete refresh token", err)
	}
	logger.Get().Info("User logged out", zap.Int64("userID", userID))
	return nil
}
