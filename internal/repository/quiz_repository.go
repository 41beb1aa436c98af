package repository

import (
	"context"
	"fmt"
	"time"

	"news-quiz/internal/domain"
	"news-quiz/internal/repository/models"
)

type sqlxQuizRepository struct {
	db DBTX
}

func NewSQLXQuizRepository(db DBTX) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

// DeleteByArticleID removes the whole question set of an article and reports
// how many rows went away.
func (r *sqlxQuizRepository) DeleteByArticleID(ctx context.Context, articleID int64) (int64, error) {
	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx,
		`DELETE FROM quiz_questions WHERE article_id = :article_id`, map[string]interface{}{"article_id": articleID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete quiz questions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// CreateQuestions inserts questions one statement at a time so insertion
// order equals id order on both drivers.
func (r *sqlxQuizRepository) CreateQuestions(ctx context.Context, questions []*domain.QuizQuestion) error {
	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO quiz_questions (article_id, question, correct_answer, created_at, updated_at)
	          VALUES (:article_id, :question, :correct_answer, :created_at, :updated_at)`

	now := time.Now()
	for i, q := range questions {
		if q.CreatedAt.IsZero() {
			q.CreatedAt = now
		}
		if q.UpdatedAt.IsZero() {
			q.UpdatedAt = now
		}
		if _, err := exec.NamedExecContext(ctx, query, fromDomainQuizQuestion(q)); err != nil {
			return fmt.Errorf("failed to insert quiz question %d: %w", i, err)
		}
	}
	return nil
}

func (r *sqlxQuizRepository) FindByArticleID(ctx context.Context, articleID int64) ([]*domain.QuizQuestion, error) {
	var rows []models.QuizQuestion
	query := `SELECT id "id", article_id "article_id", question "question", correct_answer "correct_answer",
	                 created_at "created_at", updated_at "updated_at"
	          FROM quiz_questions WHERE article_id = :article_id ORDER BY id`
	if err := selectNamed(ctx, r.db, &rows, query, map[string]interface{}{"article_id": articleID}); err != nil {
		return nil, fmt.Errorf("failed to find quiz questions: %w", err)
	}
	questions := make([]*domain.QuizQuestion, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuizQuestion(&rows[i]))
	}
	return questions, nil
}

func toDomainQuizQuestion(m *models.QuizQuestion) *domain.QuizQuestion {
	return &domain.QuizQuestion{
		ID:            m.ID,
		ArticleID:     m.ArticleID,
		Question:      m.Question,
		CorrectAnswer: m.CorrectAnswer != 0,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromDomainQuizQuestion(q *domain.QuizQuestion) *models.QuizQuestion {
	return &models.QuizQuestion{
		ID:            q.ID,
		ArticleID:     q.ArticleID,
		Question:      q.Question,
		CorrectAnswer: boolToInt(q.CorrectAnswer),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
