package domain

import (
	"context"
	"strings"
	"time"
)

// QuizQuestion is a single true/false item attached to one article.
type QuizQuestion struct {
	ID            int64
	ArticleID     int64
	Question      string
	CorrectAnswer bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewQuizQuestion creates a new QuizQuestion instance
func NewQuizQuestion(articleID int64, question string, correctAnswer bool) *QuizQuestion {
	now := time.Now()
	return &QuizQuestion{
		ArticleID:     articleID,
		Question:      question,
		CorrectAnswer: correctAnswer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate validates the question
func (q *QuizQuestion) Validate() error {
	if q.ArticleID <= 0 {
		return NewValidationError("article id is required")
	}
	if strings.TrimSpace(q.Question) == "" {
		return NewValidationError("question is required")
	}
	return nil
}

// QuestionInput is one question of an upload request.
type QuestionInput struct {
	Question      string
	CorrectAnswer bool
}

// QuizUpload replaces the whole question set of one article.
type QuizUpload struct {
	ArticleID int64
	Questions []QuestionInput
}

// SubmittedAnswer is one graded answer of a submission.
type SubmittedAnswer struct {
	ID     int64
	Answer bool
}

// GradeResult reports whether a submitted answer matched the stored one.
type GradeResult struct {
	ID        int64
	IsCorrect bool
}

// BulkUploadFailure records one request of a bulk upload that was not applied.
type BulkUploadFailure struct {
	ArticleID int64
	Code      ErrorCode
	Message   string
}

// BulkUploadResult summarises a bulk upload. Requests are applied in order
// and a failure never undoes an earlier success.
type BulkUploadResult struct {
	Uploaded []int64
	Failed   []BulkUploadFailure
}

// QuizRepository persists quiz questions.
type QuizRepository interface {
	DeleteByArticleID(ctx context.Context, articleID int64) (int64, error)
	CreateQuestions(ctx context.Context, questions []*QuizQuestion) error
	// FindByArticleID returns the article's questions in creation order.
	FindByArticleID(ctx context.Context, articleID int64) ([]*QuizQuestion, error)
}
