package service

import (
	"context"
	"time"

	"news-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- MockRefreshTokenRepository ---
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) SaveOrUpdate(ctx context.Context, userID int64, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByUserID(ctx context.Context, userID int64) (*domain.RefreshToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- MockArticleRepository ---
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) ExistsByArticleID(ctx context.Context, articleID string) (bool, error) {
	args := m.Called(ctx, articleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) GetByArticleID(ctx context.Context, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Article), args.Error(1)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) DeleteByArticleID(ctx context.Context, articleID int64) (int64, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepository) CreateQuestions(ctx context.Context, questions []*domain.QuizQuestion) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *MockQuizRepository) FindByArticleID(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizQuestion), args.Error(1)
}

// --- MockTransactionManager runs fn inline and counts calls ---
type MockTransactionManager struct {
	calls int
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateQuiz(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error) {
	args := m.Called(ctx, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedQuiz), args.Error(1)
}

// --- MockTokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) CreateToken(user *domain.User) (*domain.TokenPair, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) error {
	return m.Called(tokenString).Error(0)
}

func (m *MockTokenService) ParseAccessToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) ParseRefreshToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) GetAuthenticatedUser(ctx context.Context, tokenString string) (*domain.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
