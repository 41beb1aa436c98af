package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"news-quiz/internal/domain"
	"news-quiz/internal/repository/models"
	"news-quiz/internal/util"
)

const articleColumns = `id "id", article_id "article_id", category_id "category_id", image_url "image_url",
	title "title", description "description", source "source", published_date "published_date", created_at "created_at"`

type sqlxArticleRepository struct {
	db DBTX
}

func NewSQLXArticleRepository(db DBTX) domain.ArticleRepository {
	return &sqlxArticleRepository{db: db}
}

func (r *sqlxArticleRepository) ExistsByArticleID(ctx context.Context, articleID string) (bool, error) {
	var count int
	err := getNamed(ctx, r.db, &count, `SELECT COUNT(1) "count" FROM articles WHERE article_id = :article_id`,
		map[string]interface{}{"article_id": articleID})
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return count > 0, nil
}

// GetByArticleID looks an article up by its external id. Returns nil, nil when absent.
func (r *sqlxArticleRepository) GetByArticleID(ctx context.Context, articleID string) (*domain.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE article_id = :article_id`,
		map[string]interface{}{"article_id": articleID})
}

// GetByID returns nil, nil when absent.
func (r *sqlxArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = :id`,
		map[string]interface{}{"id": id})
}

func (r *sqlxArticleRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Article, error) {
	var m models.Article
	if err := getNamed(ctx, r.db, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return toDomainArticle(&m), nil
}

// Create inserts the article and fills in its generated id.
func (r *sqlxArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	query := `INSERT INTO articles (article_id, category_id, image_url, title, description, source, published_date, created_at)
	          VALUES (:article_id, :category_id, :image_url, :title, :description, :source, :published_date, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainArticle(article)); err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	var id int64
	err := getNamed(ctx, r.db, &id, `SELECT id "id" FROM articles WHERE article_id = :article_id`,
		map[string]interface{}{"article_id": article.ArticleID})
	if err != nil {
		return fmt.Errorf("failed to read created article id: %w", err)
	}
	article.ID = id
	return nil
}

// List returns every article, newest first.
func (r *sqlxArticleRepository) List(ctx context.Context) ([]*domain.Article, error) {
	var rows []models.Article
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY id DESC`
	if err := selectNamed(ctx, r.db, &rows, query, map[string]interface{}{}); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	articles := make([]*domain.Article, 0, len(rows))
	for i := range rows {
		articles = append(articles, toDomainArticle(&rows[i]))
	}
	return articles, nil
}

func toDomainArticle(m *models.Article) *domain.Article {
	if m == nil {
		return nil
	}
	return &domain.Article{
		ID:          m.ID,
		ArticleID:   m.ArticleID,
		CategoryID:  m.CategoryID,
		ImageURL:    m.ImageURL.String,
		Title:       m.Title,
		Description: m.Description.String,
		Source:      m.Source.String,
		Date:        m.PublishedDate.String,
		CreatedAt:   m.CreatedAt,
	}
}

func fromDomainArticle(a *domain.Article) *models.Article {
	return &models.Article{
		ID:            a.ID,
		ArticleID:     a.ArticleID,
		CategoryID:    a.CategoryID,
		ImageURL:      util.StringToNullString(a.ImageURL),
		Title:         a.Title,
		Description:   util.StringToNullString(a.Description),
		Source:        util.StringToNullString(a.Source),
		PublishedDate: util.StringToNullString(a.Date),
		CreatedAt:     a.CreatedAt,
	}
}
