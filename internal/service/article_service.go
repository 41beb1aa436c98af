package service

import (
	"context"
	"strings"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// ArticleInput is one article of an upload batch.
type ArticleInput struct {
	ArticleID   string
	CategoryID  int64
	ImageURL    string
	Title       string
	Description string
	Source      string
	Date        string
}

// ArticleService stores and lists articles.
type ArticleService interface {
	// UploadArticles saves new articles and returns the external ids that
	// were stored. Ids that already exist are skipped.
	UploadArticles(ctx context.Context, inputs []ArticleInput) ([]string, error)
	GetAllArticles(ctx context.Context) ([]*domain.Article, error)
	GetArticle(ctx context.Context, externalArticleID string) (*domain.Article, error)
}

type articleServiceImpl struct {
	articleRepo domain.ArticleRepository
	tx          domain.TransactionManager
	policy      *bluemonday.Policy
}

func NewArticleService(articleRepo domain.ArticleRepository, tx domain.TransactionManager) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		tx:          tx,
		policy:      bluemonday.UGCPolicy(),
	}
}

func (s *articleServiceImpl) UploadArticles(ctx context.Context, inputs []ArticleInput) ([]string, error) {
	saved := make([]string, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, in := range inputs {
			id := strings.TrimSpace(in.ArticleID)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			exists, err := s.articleRepo.ExistsByArticleID(txCtx, id)
			if err != nil {
				return domain.NewInternalError("failed to check article", err)
			}
			if exists {
				logger.Get().Debug("Skipping existing article", zap.String("articleID", id))
				continue
			}

			article := domain.NewArticle(id, in.CategoryID, strings.TrimSpace(in.ImageURL), strings.TrimSpace(in.Title),
				s.policy.Sanitize(in.Description), strings.TrimSpace(in.Source), strings.TrimSpace(in.Date))
			if err := article.Validate(); err != nil {
				return err
			}
			if err := s.articleRepo.Create(txCtx, article); err != nil {
				return domain.NewInternalError("failed to save article", err)
			}
			saved = append(saved, id)
		}
		return nil
	})
	if err != nil {
		return nil, toDomainError(err, "failed to upload articles")
	}

	logger.Get().Info("Articles uploaded", zap.Int("received", len(inputs)), zap.Int("saved", len(saved)))
	return saved, nil
}

func (s *articleServiceImpl) GetAllArticles(ctx context.Context) ([]*domain.Article, error) {
	articles, err := s.articleRepo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list articles", err)
	}
	return articles, nil
}

func (s *articleServiceImpl) GetArticle(ctx context.Context, externalArticleID string) (*domain.Article, error) {
	article, err := s.articleRepo.GetByArticleID(ctx, externalArticleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get article", err)
	}
	if article == nil {
		return nil, domain.NewArticleNotFoundError(externalArticleID)
	}
	return article, nil
}
