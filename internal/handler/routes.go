package handler

import (
	"news-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler of the API.
type Handlers struct {
	Quiz    *QuizHandler
	Article *ArticleHandler
	Auth    *AuthHandler
	User    *UserHandler
	AI      *AIHandler
}

// RegisterRoutes mounts the /api routes. Authentication is applied by the
// caller through middleware.Protected.
func RegisterRoutes(app fiber.Router, h Handlers, vm *middleware.ValidationMiddleware) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/reissue", h.Auth.Reissue)
	auth.Post("/logout", h.Auth.Logout)

	users := api.Group("/users")
	users.Post("/", h.User.SignUp)
	users.Get("/me", h.User.GetMyProfile)

	articles := api.Group("/articles")
	articles.Get("/", h.Article.GetAllArticles)
	articles.Post("/upload", h.Article.UploadArticles)
	articles.Get("/:articleId/with-quiz", h.Article.GetArticleWithQuiz)

	quiz := api.Group("/quiz")
	quiz.Post("/upload", h.Quiz.UploadQuiz)
	quiz.Post("/bulk-upload", h.Quiz.BulkUploadQuiz)
	quiz.Post("/grade", h.Quiz.GradeQuiz)
	quiz.Get("/article/:articleId", vm.NumericArticleID(), h.Quiz.GetQuizByArticleID)
	quiz.Get("/article/:articleId/answers", vm.NumericArticleID(), h.Quiz.GetQuizAnswers)
	quiz.Post("/generate/:articleId", vm.NumericArticleID(), h.Quiz.GenerateQuiz)

	api.Post("/ai/quiz", h.AI.GenerateQuiz)
}
