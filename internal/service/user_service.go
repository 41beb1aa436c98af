package service

import (
	"context"
	"errors"
	"strings"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// UserService registers accounts and reads profiles.
type UserService interface {
	CreateUser(ctx context.Context, email, rawPassword string) (int64, error)
	GetUserProfile(ctx context.Context, userID int64) (*domain.User, error)
}

type userServiceImpl struct {
	userRepo   domain.UserRepository
	bcryptCost int
}

// NewUserService creates a new instance of UserService. A cost outside
// bcrypt's range falls back to bcrypt.DefaultCost.
func NewUserService(userRepo domain.UserRepository, bcryptCost int) UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userServiceImpl{userRepo: userRepo, bcryptCost: bcryptCost}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, email, rawPassword string) (int64, error) {
	email = strings.TrimSpace(email)
	if rawPassword == "" {
		return 0, domain.NewValidationError("password is required")
	}
	if len(rawPassword) > maxPasswordBytes {
		return 0, domain.NewValidationError("password must be at most 72 bytes")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return 0, domain.NewInternalError("failed to check email", err)
	}
	if exists {
		return 0, domain.NewEmailDuplicatedError(email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), s.bcryptCost)
	if err != nil {
		return 0, domain.NewInternalError("failed to hash password", err)
	}

	user := domain.NewUser(email, string(hash))
	if err := user.Validate(); err != nil {
		return 0, err
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// A concurrent signup can win the insert after the existence check.
		if errors.Is(err, domain.ErrorEmailDuplicated) {
			return 0, domain.NewEmailDuplicatedError(email)
		}
		return 0, domain.NewInternalError("failed to create user", err)
	}

	logger.Get().Info("User created", zap.Int64("userID", user.ID))
	return user.ID, nil
}

func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError()
	}
	return user, nil
}
