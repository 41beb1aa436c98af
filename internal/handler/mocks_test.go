package handler_test

import (
	"context"

	"news-quiz/internal/domain"
	"news-quiz/internal/service"
)

// --- Manual Mocks ---

type MockQuizService struct {
	UploadQuizFunc             func(ctx context.Context, upload domain.QuizUpload) error
	BulkUploadQuizFunc         func(ctx context.Context, uploads []domain.QuizUpload) (*domain.BulkUploadResult, error)
	GetQuizByArticleIDFunc     func(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error)
	GetQuizAnswersFunc         func(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error)
	GradeQuizFunc              func(ctx context.Context, articleID int64, answers []domain.SubmittedAnswer) ([]domain.GradeResult, error)
	GetArticleWithQuizFunc     func(ctx context.Context, externalArticleID string) (*domain.ArticleWithQuiz, error)
	GenerateQuizForArticleFunc func(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error)
}

func (m *MockQuizService) UploadQuiz(ctx context.Context, upload domain.QuizUpload) error {
	if m.UploadQuizFunc != nil {
		return m.UploadQuizFunc(ctx, upload)
	}
	panic("MockQuizService.UploadQuizFunc not implemented")
}
func (m *MockQuizService) BulkUploadQuiz(ctx context.Context, uploads []domain.QuizUpload) (*domain.BulkUploadResult, error) {
	if m.BulkUploadQuizFunc != nil {
		return m.BulkUploadQuizFunc(ctx, uploads)
	}
	panic("MockQuizService.BulkUploadQuizFunc not implemented")
}
func (m *MockQuizService) GetQuizByArticleID(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	if m.GetQuizByArticleIDFunc != nil {
		return m.GetQuizByArticleIDFunc(ctx, articleID)
	}
	panic("MockQuizService.GetQuizByArticleIDFunc not implemented")
}
func (m *MockQuizService) GetQuizAnswers(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	if m.GetQuizAnswersFunc != nil {
		return m.GetQuizAnswersFunc(ctx, articleID)
	}
	panic("MockQuizService.GetQuizAnswersFunc not implemented")
}
func (m *MockQuizService) GradeQuiz(ctx context.Context, articleID int64, answers []domain.SubmittedAnswer) ([]domain.GradeResult, error) {
	if m.GradeQuizFunc != nil {
		return m.GradeQuizFunc(ctx, articleID, answers)
	}
	panic("MockQuizService.GradeQuizFunc not implemented")
}
func (m *MockQuizService) GetArticleWithQuiz(ctx context.Context, externalArticleID string) (*domain.ArticleWithQuiz, error) {
	if m.GetArticleWithQuizFunc != nil {
		return m.GetArticleWithQuizFunc(ctx, externalArticleID)
	}
	panic("MockQuizService.GetArticleWithQuizFunc not implemented")
}
func (m *MockQuizService) GenerateQuizForArticle(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	if m.GenerateQuizForArticleFunc != nil {
		return m.GenerateQuizForArticleFunc(ctx, articleID)
	}
	panic("MockQuizService.GenerateQuizForArticleFunc not implemented")
}

type MockArticleService struct {
	UploadArticlesFunc func(ctx context.Context, inputs []service.ArticleInput) ([]string, error)
	GetAllArticlesFunc func(ctx context.Context) ([]*domain.Article, error)
	GetArticleFunc     func(ctx context.Context, externalArticleID string) (*domain.Article, error)
}

func (m *MockArticleService) UploadArticles(ctx context.Context, inputs []service.ArticleInput) ([]string, error) {
	if m.UploadArticlesFunc != nil {
		return m.UploadArticlesFunc(ctx, inputs)
	}
	panic("MockArticleService.UploadArticlesFunc not implemented")
}
func (m *MockArticleService) GetAllArticles(ctx context.Context) ([]*domain.Article, error) {
	if m.GetAllArticlesFunc != nil {
		return m.GetAllArticlesFunc(ctx)
	}
	panic("MockArticleService.GetAllArticlesFunc not implemented")
}
func (m *MockArticleService) GetArticle(ctx context.Context, externalArticleID string) (*domain.Article, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, externalArticleID)
	}
	panic("MockArticleService.GetArticleFunc not implemented")
}

type MockAuthService struct {
	LoginFunc   func(ctx context.Context, email, rawPassword string) (*domain.TokenPair, error)
	ReissueFunc func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	LogoutFunc  func(ctx context.Context, userID int64) error
}

func (m *MockAuthService) Login(ctx context.Context, email, rawPassword string) (*domain.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, rawPassword)
	}
	panic("MockAuthService.LoginFunc not implemented")
}
func (m *MockAuthService) Reissue(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if m.ReissueFunc != nil {
		return m.ReissueFunc(ctx, refreshToken)
	}
	panic("MockAuthService.ReissueFunc not implemented")
}
func (m *MockAuthService) Logout(ctx context.Context, userID int64) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	panic("MockAuthService.LogoutFunc not implemented")
}

type MockUserService struct {
	CreateUserFunc     func(ctx context.Context, email, rawPassword string) (int64, error)
	GetUserProfileFunc func(ctx context.Context, userID int64) (*domain.User, error)
}

func (m *MockUserService) CreateUser(ctx context.Context, email, rawPassword string) (int64, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, email, rawPassword)
	}
	panic("MockUserService.CreateUserFunc not implemented")
}
func (m *MockUserService) GetUserProfile(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	panic("MockUserService.GetUserProfileFunc not implemented")
}

type MockAIQuizService struct {
	GenerateQuizFunc func(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error)
}

func (m *MockAIQuizService) GenerateQuiz(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, title, content)
	}
	panic("MockAIQuizService.GenerateQuizFunc not implemented")
}

// MockTokenService accepts "Bearer valid" as user 1 and rejects anything else.
type MockTokenService struct{}

func (m *MockTokenService) CreateToken(user *domain.User) (*domain.TokenPair, error) {
	panic("not implemented in mock")
}
func (m *MockTokenService) ValidateToken(tokenString string) error {
	panic("not implemented in mock")
}
func (m *MockTokenService) ParseAccessToken(tokenString string) (int64, error) {
	panic("not implemented in mock")
}
func (m *MockTokenService) ParseRefreshToken(tokenString string) (int64, error) {
	panic("not implemented in mock")
}
func (m *MockTokenService) GetAuthenticatedUser(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "valid" {
		return &domain.User{ID: 1, Email: "me@example.com"}, nil
	}
	return nil, domain.NewInvalidSignatureOrExpiredError(nil)
}
