package domain

import (
	"context"
	"strings"
	"time"
)

// Article is a content item quizzes are generated from and attached to.
// ArticleID is the external identifier supplied by the uploader.
type Article struct {
	ID          int64
	ArticleID   string
	CategoryID  int64
	ImageURL    string
	Title       string
	Description string
	Source      string
	Date        string
	CreatedAt   time.Time
}

// NewArticle creates a new Article instance
func NewArticle(articleID string, categoryID int64, imageURL, title, description, source, date string) *Article {
	return &Article{
		ArticleID:   articleID,
		CategoryID:  categoryID,
		ImageURL:    imageURL,
		Title:       title,
		Description: description,
		Source:      source,
		Date:        date,
		CreatedAt:   time.Now(),
	}
}

// Validate validates the article
func (a *Article) Validate() error {
	if strings.TrimSpace(a.ArticleID) == "" {
		return NewValidationError("article id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return NewValidationError("title is required")
	}
	return nil
}

// ArticleWithQuiz joins an article with its question list. Answers are not included.
type ArticleWithQuiz struct {
	Article   *Article
	Questions []*QuizQuestion
}

// ArticleRepository persists articles.
type ArticleRepository interface {
	ExistsByArticleID(ctx context.Context, articleID string) (bool, error)
	GetByArticleID(ctx context.Context, articleID string) (*Article, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
	Create(ctx context.Context, article *Article) error
	List(ctx context.Context) ([]*Article, error)
}
