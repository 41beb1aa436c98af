// @title News Quiz API
// @version 1.0
// @description API for news articles and the true/false quizzes attached to them.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "news-quiz/cmd/api/docs"
	"news-quiz/internal/adapter"
	"news-quiz/internal/adapter/quizgen"
	"news-quiz/internal/cache"
	"news-quiz/internal/config"
	"news-quiz/internal/database"
	"news-quiz/internal/domain"
	"news-quiz/internal/handler"
	"news-quiz/internal/logger"
	"news-quiz/internal/middleware"
	"news-quiz/internal/repository"
	"news-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis is optional. Without it the quiz cache is disabled.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	switch {
	case err != nil:
		appLogger.Warn("Redis unavailable, running without quiz cache", zap.Error(err))
	case redisClient == nil:
		appLogger.Info("No Redis address configured, quiz cache disabled")
	default:
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	generator, err := quizgen.New(cfg.AI)
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.String("provider", cfg.AI.Provider), zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewSQLXUserRepository(db)
	refreshRepo := repository.NewSQLXRefreshTokenRepository(db)
	articleRepo := repository.NewSQLXArticleRepository(db)
	quizRepo := repository.NewSQLXQuizRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	tokenService := service.NewTokenService(cfg.JWT, userRepo)
	authService := service.NewAuthService(userRepo, refreshRepo, tokenService, txManager)
	userService := service.NewUserService(userRepo, cfg.Security.BcryptCost)
	articleService := service.NewArticleService(articleRepo, txManager)
	aiService := service.NewAIQuizService(generator, cfg.AI.Timeout)
	quizCache := service.NewQuizCache(cacheAdapter, cfg.Cache.QuizTTL)
	quizService := service.NewQuizService(articleRepo, quizRepo, txManager, quizCache, aiService)

	// Handlers
	vm := middleware.NewValidationMiddleware()
	handlers := handler.Handlers{
		Quiz:    handler.NewQuizHandler(quizService, vm),
		Article: handler.NewArticleHandler(articleService, quizService, vm),
		Auth:    handler.NewAuthHandler(authService, vm, cfg.Security.RefreshCookieTTL),
		User:    handler.NewUserHandler(userService, vm),
		AI:      handler.NewAIHandler(aiService, vm),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(cfg.Security.CORSAllowedOrigins, ","),
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: "Authorization",
		MaxAge:        300,
	}))
	app.Use(middleware.Protected(tokenService, middleware.NewPermitList(cfg.Security.PermitURLs)))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", healthHandler(db, cacheAdapter))

	handler.RegisterRoutes(app, handlers, vm)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

// healthHandler reports database and cache reachability. The cache is only
// checked when one is configured.
func healthHandler(db *sqlx.DB, c domain.Cache) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		status := fiber.Map{"database": "up"}
		healthy := true
		if err := db.PingContext(pingCtx); err != nil {
			status["database"] = "down"
			healthy = false
		}
		if c != nil {
			status["cache"] = "up"
			if err := c.Ping(pingCtx); err != nil {
				status["cache"] = "down"
				healthy = false
			}
		}

		if !healthy {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		return ctx.JSON(status)
	}
}
