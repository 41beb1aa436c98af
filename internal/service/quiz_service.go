package service

import (
	"context"
	"errors"
	"fmt"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"
	"news-quiz/internal/metrics"

	"go.uber.org/zap"
)

// QuizService orchestrates quiz upload, retrieval and grading.
type QuizService interface {
	// UploadQuiz replaces the article's whole question set atomically.
	UploadQuiz(ctx context.Context, upload domain.QuizUpload) error
	// BulkUploadQuiz applies UploadQuiz per request in order. A failed request
	// is reported and the rest still run.
	BulkUploadQuiz(ctx context.Context, uploads []domain.QuizUpload) (*domain.BulkUploadResult, error)
	GetQuizByArticleID(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error)
	GetQuizAnswers(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error)
	// GradeQuiz fails on the first answer whose id is not part of the article's set.
	GradeQuiz(ctx context.Context, articleID int64, answers []domain.SubmittedAnswer) ([]domain.GradeResult, error)
	GetArticleWithQuiz(ctx context.Context, externalArticleID string) (*domain.ArticleWithQuiz, error)
	// GenerateQuizForArticle asks the AI generator for OX items and uploads them.
	GenerateQuizForArticle(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error)
}

type quizServiceImpl struct {
	articleRepo domain.ArticleRepository
	quizRepo    domain.QuizRepository
	tx          domain.TransactionManager
	cache       *QuizCache
	ai          AIQuizService
}

// NewQuizService creates a new quiz service instance. cache and ai may be nil.
func NewQuizService(
	articleRepo domain.ArticleRepository,
	quizRepo domain.QuizRepository,
	tx domain.TransactionManager,
	cache *QuizCache,
	ai AIQuizService,
) QuizService {
	return &quizServiceImpl{
		articleRepo: articleRepo,
		quizRepo:    quizRepo,
		tx:          tx,
		cache:       cache,
		ai:          ai,
	}
}

// toDomainError keeps domain errors and wraps anything else as internal.
func toDomainError(err error, message string) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domain.NewInternalError(message, err)
}

func (s *quizServiceImpl) UploadQuiz(ctx context.Context, upload domain.QuizUpload) error {
	err := s.uploadQuiz(ctx, upload)
	metrics.RecordQuizUpload(err)
	return err
}

func (s *quizServiceImpl) uploadQuiz(ctx context.Context, upload domain.QuizUpload) error {
	questions := make([]*domain.QuizQuestion, 0, len(upload.Questions))
	for _, in := range upload.Questions {
		q := domain.NewQuizQuestion(upload.ArticleID, in.Question, in.CorrectAnswer)
		if err := q.Validate(); err != nil {
			return err
		}
		questions = append(questions, q)
	}

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		article, err := s.articleRepo.GetByID(txCtx, upload.ArticleID)
		if err != nil {
			return domain.NewInternalError("failed to get article", err)
		}
		if article == nil {
			return domain.NewArticleNotFoundError(upload.ArticleID)
		}

		deleted, err := s.quizRepo.DeleteByArticleID(txCtx, upload.ArticleID)
		if err != nil {
			return domain.NewInternalError("failed to delete existing quiz", err)
		}
		if len(questions) > 0 {
			if err := s.quizRepo.CreateQuestions(txCtx, questions); err != nil {
				return domain.NewInternalError("failed to save quiz", err)
			}
		}

		logger.Get().Info("Quiz uploaded",
			zap.Int64("articleID", upload.ArticleID),
			zap.Int64("replaced", deleted),
			zap.Int("questions", len(questions)))
		return nil
	})
	if err != nil {
		return toDomainError(err, "failed to upload quiz")
	}

	s.cache.Invalidate(ctx, upload.ArticleID)
	return nil
}

func (s *quizServiceImpl) BulkUploadQuiz(ctx context.Context, uploads []domain.QuizUpload) (*domain.BulkUploadResult, error) {
	result := &domain.BulkUploadResult{
		Uploaded: make([]int64, 0, len(uploads)),
		Failed:   []domain.BulkUploadFailure{},
	}
	for _, upload := range uploads {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.UploadQuiz(ctx, upload); err != nil {
			failure := domain.BulkUploadFailure{ArticleID: upload.ArticleID, Code: domain.ErrInternal, Message: err.Error()}
			var de *domain.DomainError
			if errors.As(err, &de) {
				failure.Code = de.Code
				failure.Message = de.Message
			}
			logger.Get().Warn("Bulk quiz upload item failed", zap.Int64("articleID", upload.ArticleID), zap.Error(err))
			result.Failed = append(result.Failed, failure)
			continue
		}
		result.Uploaded = append(result.Uploaded, upload.ArticleID)
	}
	return result, nil
}

func (s *quizServiceImpl) questions(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	questions, err := s.cache.Questions(ctx, articleID, func(ctx context.Context) ([]*domain.QuizQuestion, error) {
		return s.quizRepo.FindByArticleID(ctx, articleID)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	return questions, nil
}

func (s *quizServiceImpl) GetQuizByArticleID(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	questions, err := s.questions(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.NewQuizNotFoundError(articleID)
	}
	return questions, nil
}

func (s *quizServiceImpl) GetQuizAnswers(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	return s.GetQuizByArticleID(ctx, articleID)
}

// GradeQuiz always reads the stored set, never the cache.
func (s *quizServiceImpl) GradeQuiz(ctx context.Context, articleID int64, answers []domain.SubmittedAnswer) ([]domain.GradeResult, error) {
	questions, err := s.quizRepo.FindByArticleID(ctx, articleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewQuizNotFoundError(articleID)
	}

	correct := make(map[int64]bool, len(questions))
	for _, q := range questions {
		correct[q.ID] = q.CorrectAnswer
	}

	results := make([]domain.GradeResult, 0, len(answers))
	for _, a := range answers {
		want, ok := correct[a.ID]
		if !ok {
			return nil, domain.NewBadRequestError(
				fmt.Sprintf("Question %d does not belong to article %d", a.ID, articleID))
		}
		results = append(results, domain.GradeResult{ID: a.ID, IsCorrect: a.Answer == want})
	}

	for _, r := range results {
		metrics.RecordGrade(r.IsCorrect)
	}
	return results, nil
}

func (s *quizServiceImpl) GetArticleWithQuiz(ctx context.Context, externalArticleID string) (*domain.ArticleWithQuiz, error) {
	article, err := s.articleRepo.GetByArticleID(ctx, externalArticleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get article", err)
	}
	if article == nil {
		return nil, domain.NewArticleNotFoundError(externalArticleID)
	}

	questions, err := s.questions(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	return &domain.ArticleWithQuiz{Article: article, Questions: questions}, nil
}

func (s *quizServiceImpl) GenerateQuizForArticle(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	if s.ai == nil {
		return nil, domain.NewAIServiceError(errors.New("no quiz generator configured"))
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get article", err)
	}
	if article == nil {
		return nil, domain.NewArticleNotFoundError(articleID)
	}

	items, err := s.ai.GenerateQuiz(ctx, article.Title, article.Description)
	if err != nil {
		return nil, err
	}

	upload := domain.QuizUpload{ArticleID: articleID}
	for _, item := range items {
		answer, ok := item.OXAnswer()
		if !ok {
			continue
		}
		upload.Questions = append(upload.Questions, domain.QuestionInput{Question: item.Question, CorrectAnswer: answer})
	}
	if len(upload.Questions) == 0 {
		return nil, domain.NewAIServiceError(errors.New("generator returned no true/false items"))
	}

	if err := s.UploadQuiz(ctx, upload); err != nil {
		return nil, err
	}
	return s.GetQuizByArticleID(ctx, articleID)
}
