package service

import (
	"context"
	"errors"
	"testing"

	"news-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type quizFixture struct {
	articles *MockArticleRepository
	quizzes  *MockQuizRepository
	tx       *MockTransactionManager
	gen      *MockQuizGenerator
	service  QuizService
}

func newQuizFixture() *quizFixture {
	f := &quizFixture{
		articles: new(MockArticleRepository),
		quizzes:  new(MockQuizRepository),
		tx:       &MockTransactionManager{},
		gen:      new(MockQuizGenerator),
	}
	f.service = NewQuizService(f.articles, f.quizzes, f.tx, nil, NewAIQuizService(f.gen, 0))
	return f
}

func storedQuestions(articleID int64) []*domain.QuizQuestion {
	return []*domain.QuizQuestion{
		{ID: 1, ArticleID: articleID, Question: "Paris is the capital of France", CorrectAnswer: true},
		{ID: 2, ArticleID: articleID, Question: "2+2=5", CorrectAnswer: false},
	}
}

func TestQuizService_UploadQuiz_ReplacesSet(t *testing.T) {
	f := newQuizFixture()
	article := &domain.Article{ID: 1, ArticleID: "news-1"}

	f.articles.On("GetByID", mock.Anything, int64(1)).Return(article, nil)
	f.quizzes.On("DeleteByArticleID", mock.Anything, int64(1)).Return(int64(3), nil)
	f.quizzes.On("CreateQuestions", mock.Anything, mock.MatchedBy(func(qs []*domain.QuizQuestion) bool {
		return len(qs) == 2 &&
			qs[0].Question == "Paris is the capital of France" && qs[0].CorrectAnswer &&
			qs[1].Question == "2+2=5" && !qs[1].CorrectAnswer &&
			qs[0].ArticleID == 1 && qs[1].ArticleID == 1
	})).Return(nil)

	err := f.service.UploadQuiz(context.Background(), domain.QuizUpload{
		ArticleID: 1,
		Questions: []domain.QuestionInput{
			{Question: "Paris is the capital of France", CorrectAnswer: true},
			{Question: "2+2=5", CorrectAnswer: false},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.tx.calls)
	f.articles.AssertExpectations(t)
	f.quizzes.AssertExpectations(t)
}

func TestQuizService_UploadQuiz_ArticleMissing(t *testing.T) {
	f := newQuizFixture()
	f.articles.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	err := f.service.UploadQuiz(context.Background(), domain.QuizUpload{
		ArticleID: 99,
		Questions: []domain.QuestionInput{{Question: "q", CorrectAnswer: true}},
	})
	assert.ErrorIs(t, err, domain.ErrorNotFound)
	f.quizzes.AssertNotCalled(t, "DeleteByArticleID", mock.Anything, mock.Anything)
	f.quizzes.AssertNotCalled(t, "CreateQuestions", mock.Anything, mock.Anything)
}

func TestQuizService_UploadQuiz_InsertFailure(t *testing.T) {
	f := newQuizFixture()
	f.articles.On("GetByID", mock.Anything, int64(1)).Return(&domain.Article{ID: 1}, nil)
	f.quizzes.On("DeleteByArticleID", mock.Anything, int64(1)).Return(int64(0), nil)
	f.quizzes.On("CreateQuestions", mock.Anything, mock.Anything).Return(errors.New("constraint"))

	err := f.service.UploadQuiz(context.Background(), domain.QuizUpload{
		ArticleID: 1,
		Questions: []domain.QuestionInput{{Question: "q", CorrectAnswer: true}},
	})
	assert.ErrorIs(t, err, domain.ErrorInternal)
}

func TestQuizService_UploadQuiz_BlankQuestion(t *testing.T) {
	f := newQuizFixture()

	err := f.service.UploadQuiz(context.Background(), domain.QuizUpload{
		ArticleID: 1,
		Questions: []domain.QuestionInput{{Question: "  ", CorrectAnswer: true}},
	})
	assert.ErrorIs(t, err, domain.ErrorInvalidInput)
	assert.Zero(t, f.tx.calls)
}

func TestQuizService_BulkUploadQuiz_ContinuesPastFailures(t *testing.T) {
	f := newQuizFixture()
	f.articles.On("GetByID", mock.Anything, int64(1)).Return(&domain.Article{ID: 1}, nil)
	f.articles.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)
	f.articles.On("GetByID", mock.Anything, int64(3)).Return(&domain.Article{ID: 3}, nil)
	f.quizzes.On("DeleteByArticleID", mock.Anything, mock.Anything).Return(int64(0), nil)
	f.quizzes.On("CreateQuestions", mock.Anything, mock.Anything).Return(nil)

	q := []domain.QuestionInput{{Question: "q", CorrectAnswer: true}}
	result, err := f.service.BulkUploadQuiz(context.Background(), []domain.QuizUpload{
		{ArticleID: 1, Questions: q},
		{ArticleID: 2, Questions: q},
		{ArticleID: 3, Questions: q},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, result.Uploaded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(2), result.Failed[0].ArticleID)
	assert.Equal(t, domain.ErrNotFound, result.Failed[0].Code)
	assert.Equal(t, 3, f.tx.calls)
}

func TestQuizService_GetQuizByArticleID(t *testing.T) {
	f := newQuizFixture()
	f.quizzes.On("FindByArticleID", mock.Anything, int64(1)).Return(storedQuestions(1), nil)
	f.quizzes.On("FindByArticleID", mock.Anything, int64(2)).Return([]*domain.QuizQuestion{}, nil)

	qs, err := f.service.GetQuizByArticleID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Paris is the capital of France", qs[0].Question)

	_, err = f.service.GetQuizByArticleID(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrorNotFound)
}

func TestQuizService_GetQuizAnswers(t *testing.T) {
	f := newQuizFixture()
	f.quizzes.On("FindByArticleID", mock.Anything, int64(1)).Return(storedQuestions(1), nil)

	qs, err := f.service.GetQuizAnswers(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, qs[0].CorrectAnswer)
	assert.False(t, qs[1].CorrectAnswer)
}

func TestQuizService_GradeQuiz(t *testing.T) {
	f := newQuizFixture()
	f.quizzes.On("FindByArticleID", mock.Anything, int64(1)).Return(storedQuestions(1), nil)
	f.quizzes.On("FindByArticleID", mock.Anything, int64(2)).Return([]*domain.QuizQuestion{}, nil)
	ctx := context.Background()

	t.Run("matches stored answers in submission order", func(t *testing.T) {
		results, err := f.service.GradeQuiz(ctx, 1, []domain.SubmittedAnswer{
			{ID: 2, Answer: true},
			{ID: 1, Answer: true},
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.GradeResult{
			{ID: 2, IsCorrect: false},
			{ID: 1, IsCorrect: true},
		}, results)
	})

	t.Run("false against false is correct", func(t *testing.T) {
		results, err := f.service.GradeQuiz(ctx, 1, []domain.SubmittedAnswer{{ID: 2, Answer: false}})
		require.NoError(t, err)
		assert.True(t, results[0].IsCorrect)
	})

	t.Run("unknown id fails the whole call", func(t *testing.T) {
		results, err := f.service.GradeQuiz(ctx, 1, []domain.SubmittedAnswer{
			{ID: 1, Answer: true},
			{ID: 77, Answer: true},
		})
		assert.ErrorIs(t, err, domain.ErrorBadRequest)
		assert.Nil(t, results)
	})

	t.Run("no quiz", func(t *testing.T) {
		_, err := f.service.GradeQuiz(ctx, 2, []domain.SubmittedAnswer{{ID: 1, Answer: true}})
		assert.ErrorIs(t, err, domain.ErrorNotFound)
	})
}

func TestQuizService_GetArticleWithQuiz(t *testing.T) {
	f := newQuizFixture()
	article := &domain.Article{ID: 1, ArticleID: "news-1", Title: "T"}
	f.articles.On("GetByArticleID", mock.Anything, "news-1").Return(article, nil)
	f.articles.On("GetByArticleID", mock.Anything, "missing").Return(nil, nil)
	f.quizzes.On("FindByArticleID", mock.Anything, int64(1)).Return(storedQuestions(1), nil)

	got, err := f.service.GetArticleWithQuiz(context.Background(), "news-1")
	require.NoError(t, err)
	assert.Equal(t, article, got.Article)
	assert.Len(t, got.Questions, 2)

	_, err = f.service.GetArticleWithQuiz(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrorNotFound)
}

func TestQuizService_GenerateQuizForArticle(t *testing.T) {
	f := newQuizFixture()
	article := &domain.Article{ID: 1, Title: "Rates", Description: "<p>The central bank raised rates.</p>"}
	f.articles.On("GetByID", mock.Anything, int64(1)).Return(article, nil)
	f.gen.On("GenerateQuiz", mock.Anything, "Rates", "The central bank raised rates.").Return([]domain.GeneratedQuiz{
		{Question: "Rates went up", QuizType: domain.QuizTypeOX, Answer: "O"},
		{Question: "Which bank?", QuizType: domain.QuizTypeMultipleChoice, Options: []string{"a", "b"}, Answer: "a"},
		{Question: "Rates went down", QuizType: domain.QuizTypeOX, Answer: "X"},
	}, nil)
	f.quizzes.On("DeleteByArticleID", mock.Anything, int64(1)).Return(int64(0), nil)
	f.quizzes.On("CreateQuestions", mock.Anything, mock.MatchedBy(func(qs []*domain.QuizQuestion) bool {
		return len(qs) == 2 && qs[0].CorrectAnswer && !qs[1].CorrectAnswer
	})).Return(nil)
	f.quizzes.On("FindByArticleID", mock.Anything, int64(1)).Return([]*domain.QuizQuestion{
		{ID: 10, ArticleID: 1, Question: "Rates went up", CorrectAnswer: true},
		{ID: 11, ArticleID: 1, Question: "Rates went down", CorrectAnswer: false},
	}, nil)

	qs, err := f.service.GenerateQuizForArticle(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, qs, 2)
	f.gen.AssertExpectations(t)
}

func TestQuizService_GenerateQuizForArticle_NoOXItems(t *testing.T) {
	f := newQuizFixture()
	f.articles.On("GetByID", mock.Anything, int64(1)).Return(&domain.Article{ID: 1, Title: "T", Description: "body"}, nil)
	f.gen.On("GenerateQuiz", mock.Anything, "T", "body").Return([]domain.GeneratedQuiz{
		{Question: "Pick one", QuizType: domain.QuizTypeMultipleChoice, Answer: "a"},
	}, nil)

	_, err := f.service.GenerateQuizForArticle(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrorAIService)
	f.quizzes.AssertNotCalled(t, "DeleteByArticleID", mock.Anything, mock.Anything)
}

func TestQuizService_GenerateQuizForArticle_GeneratorDown(t *testing.T) {
	f := newQuizFixture()
	f.articles.On("GetByID", mock.Anything, int64(1)).Return(&domain.Article{ID: 1, Title: "T", Description: "body"}, nil)
	f.gen.On("GenerateQuiz", mock.Anything, "T", "body").Return(nil, errors.New("connection refused"))

	_, err := f.service.GenerateQuizForArticle(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrorAIService)
}
