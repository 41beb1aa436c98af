package handler

import (
	"news-quiz/internal/domain"
	"news-quiz/internal/dto"
	"news-quiz/internal/middleware"
	"news-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ArticleHandler struct {
	articles  service.ArticleService
	quizzes   service.QuizService
	validator *middleware.ValidationMiddleware
}

func NewArticleHandler(articles service.ArticleService, quizzes service.QuizService, validator *middleware.ValidationMiddleware) *ArticleHandler {
	return &ArticleHandler{articles: articles, quizzes: quizzes, validator: validator}
}

// UploadArticles godoc
// @Summary Upload articles
// @Description Stores new articles; ids that already exist are skipped. Returns the stored ids.
// @Tags articles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body []dto.ArticleUploadRequest true "Articles"
// @Success 200 {array} string
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles/upload [post]
func (h *ArticleHandler) UploadArticles(c *fiber.Ctx) error {
	var list []dto.ArticleUploadRequest
	if err := c.BodyParser(&list); err != nil {
		return domain.NewValidationError("request body must be a JSON array of articles")
	}
	req := dto.ArticleUploadListRequest{Articles: list}
	if err := h.validator.Validate(&req); err != nil {
		return err
	}

	inputs := make([]service.ArticleInput, 0, len(list))
	for _, a := range list {
		inputs = append(inputs, service.ArticleInput{
			ArticleID:   a.ArticleID,
			CategoryID:  a.CategoryID,
			ImageURL:    a.ImageURL,
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source,
			Date:        a.Date,
		})
	}
	saved, err := h.articles.UploadArticles(c.UserContext(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(dto.Data(saved))
}

// GetAllArticles godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {array} dto.ArticleResponse
// @Router /articles [get]
func (h *ArticleHandler) GetAllArticles(c *fiber.Ctx) error {
	articles, err := h.articles.GetAllArticles(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}
	return c.JSON(dto.Data(out))
}

// GetArticleWithQuiz godoc
// @Summary Get an article with its quiz
// @Tags articles
// @Produce json
// @Param articleId path string true "External article ID"
// @Success 200 {object} dto.ArticleWithQuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /articles/{articleId}/with-quiz [get]
func (h *ArticleHandler) GetArticleWithQuiz(c *fiber.Ctx) error {
	result, err := h.quizzes.GetArticleWithQuiz(c.UserContext(), c.Params("articleId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.Data(dto.ArticleWithQuizResponse{
		Article:  toArticleResponse(result.Article),
		QuizList: toQuestionResponses(result.Questions),
	}))
}
