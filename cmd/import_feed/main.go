// Command import_feed pulls RSS/Atom feeds into the article store and can
// optionally generate a quiz for every newly stored article.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"news-quiz/internal/adapter/feed"
	"news-quiz/internal/adapter/quizgen"
	"news-quiz/internal/config"
	"news-quiz/internal/database"
	"news-quiz/internal/logger"
	"news-quiz/internal/repository"
	"news-quiz/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	feedURLs   []string
	categoryID int64
	generate   bool
)

var rootCmd = &cobra.Command{
	Use:   "import_feed",
	Short: "Import articles from RSS/Atom feeds",
	Long: `import_feed fetches each feed, stores items whose id is not yet known
and prints the stored ids. With --generate a true/false quiz is requested
from the configured AI provider for every stored article.

Examples:
  import_feed --url https://example.com/rss --category 3
  import_feed --url https://a.example/rss --url https://b.example/atom --generate`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runImport,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&feedURLs, "url", "u", nil, "feed URL (repeatable)")
	rootCmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "category id assigned to imported articles")
	rootCmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate a quiz for each stored article")
	_ = rootCmd.MarkFlagRequired("url")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Get()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
		return err
	}

	articleRepo := repository.NewSQLXArticleRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	articles := service.NewArticleService(articleRepo, txManager)

	var quizzes service.QuizService
	if generate {
		gen, err := quizgen.New(cfg.AI)
		if err != nil {
			return err
		}
		if gen == nil {
			return errors.New("--generate needs ai.provider to be configured")
		}
		quizRepo := repository.NewSQLXQuizRepository(db)
		quizzes = service.NewQuizService(articleRepo, quizRepo, txManager, nil, service.NewAIQuizService(gen, cfg.AI.Timeout))
	}

	fetcher := feed.NewFetcher(nil)
	var failed int
	for _, url := range feedURLs {
		inputs, err := fetcher.Fetch(ctx, url, categoryID)
		if err != nil {
			log.Error("Feed fetch failed", zap.String("url", url), zap.Error(err))
			failed++
			continue
		}
		saved, err := articles.UploadArticles(ctx, inputs)
		if err != nil {
			log.Error("Article upload failed", zap.String("url", url), zap.Error(err))
			failed++
			continue
		}
		for _, id := range saved {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		log.Info("Feed imported", zap.String("url", url), zap.Int("stored", len(saved)))

		if quizzes != nil {
			generateQuizzes(ctx, articles, quizzes, saved)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d feeds failed", failed, len(feedURLs))
	}
	return nil
}

// generateQuizzes logs and skips articles whose generation fails.
func generateQuizzes(ctx context.Context, articles service.ArticleService, quizzes service.QuizService, externalIDs []string) {
	log := logger.Get()
	for _, externalID := range externalIDs {
		article, err := articles.GetArticle(ctx, externalID)
		if err != nil {
			log.Warn("Stored article not readable", zap.String("articleId", externalID), zap.Error(err))
			continue
		}
		questions, err := quizzes.GenerateQuizForArticle(ctx, article.ID)
		if err != nil {
			log.Warn("Quiz generation failed", zap.Int64("articleId", article.ID), zap.Error(err))
			continue
		}
		log.Info("Quiz generated", zap.Int64("articleId", article.ID), zap.Int("questions", len(questions)))
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
