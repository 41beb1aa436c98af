package handler

import (
	"news-quiz/internal/domain"
	"news-quiz/internal/dto"
	"news-quiz/internal/middleware"
	"news-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *middleware.ValidationMiddleware
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *middleware.ValidationMiddleware) *QuizHandler {
	return &QuizHandler{service: service, validator: validator}
}

// UploadQuiz godoc
// @Summary Upload a quiz
// @Description Replaces every question of an article with the submitted set
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.QuizUploadRequest true "Quiz set"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/upload [post]
func (h *QuizHandler) UploadQuiz(c *fiber.Ctx) error {
	var req dto.QuizUploadRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	if err := h.service.UploadQuiz(c.UserContext(), toQuizUpload(req)); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Data(dto.MessageResponse{Message: "Quiz uploaded"}))
}

// BulkUploadQuiz godoc
// @Summary Upload several quizzes
// @Description Applies each upload in order; failed uploads are reported and the rest still run
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.QuizBulkUploadRequest true "Quiz sets"
// @Success 201 {object} dto.QuizBulkUploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz/bulk-upload [post]
func (h *QuizHandler) BulkUploadQuiz(c *fiber.Ctx) error {
	var req dto.QuizBulkUploadRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}

	uploads := make([]domain.QuizUpload, 0, len(req.Quizzes))
	for _, q := range req.Quizzes {
		uploads = append(uploads, toQuizUpload(q))
	}
	result, err := h.service.BulkUploadQuiz(c.UserContext(), uploads)
	if err != nil {
		return err
	}

	resp := dto.QuizBulkUploadResponse{
		Uploaded: result.Uploaded,
		Failed:   make([]dto.BulkUploadFailure, 0, len(result.Failed)),
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, dto.BulkUploadFailure{
			ArticleID: f.ArticleID,
			Code:      string(f.Code),
			Message:   f.Message,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Data(resp))
}

// GetQuizByArticleID godoc
// @Summary Get an article's quiz
// @Description Returns the questions of an article without answers
// @Tags quiz
// @Produce json
// @Param articleId path int true "Article ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/article/{articleId} [get]
func (h *QuizHandler) GetQuizByArticleID(c *fiber.Ctx) error {
	articleID := middleware.ArticleID(c)
	questions, err := h.service.GetQuizByArticleID(c.UserContext(), articleID)
	if err != nil {
		return err
	}
	return c.JSON(dto.Data(dto.QuizResponse{
		ArticleID: articleID,
		Questions: toQuestionResponses(questions),
	}))
}

// GetQuizAnswers godoc
// @Summary Get an article's answer key
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param articleId path int true "Article ID"
// @Success 200 {object} dto.QuizGradeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/article/{articleId}/answers [get]
func (h *QuizHandler) GetQuizAnswers(c *fiber.Ctx) error {
	articleID := middleware.ArticleID(c)
	questions, err := h.service.GetQuizAnswers(c.UserContext(), articleID)
	if err != nil {
		return err
	}
	results := make([]dto.QuizResultResponse, 0, len(questions))
	for _, q := range questions {
		results = append(results, dto.QuizResultResponse{ID: q.ID, CorrectAnswer: q.CorrectAnswer})
	}
	return c.JSON(dto.Data(dto.QuizGradeResponse{ArticleID: articleID, Results: results}))
}

// GradeQuiz godoc
// @Summary Grade submitted answers
// @Description Results follow submission order; correctAnswer tells whether each answer was right
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.QuizGradeRequest true "Answers"
// @Success 200 {object} dto.QuizGradeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/grade [post]
func (h *QuizHandler) GradeQuiz(c *fiber.Ctx) error {
	var req dto.QuizGradeRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}

	answers := make([]domain.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.SubmittedAnswer{ID: a.ID, Answer: *a.Answer})
	}
	graded, err := h.service.GradeQuiz(c.UserContext(), req.ArticleID, answers)
	if err != nil {
		return err
	}

	results := make([]dto.QuizResultResponse, 0, len(graded))
	for _, r := range graded {
		results = append(results, dto.QuizResultResponse{ID: r.ID, CorrectAnswer: r.IsCorrect})
	}
	return c.JSON(dto.Data(dto.QuizGradeResponse{ArticleID: req.ArticleID, Results: results}))
}

// GenerateQuiz godoc
// @Summary Generate a quiz with AI
// @Description Asks the configured model for true/false items and uploads them for the article
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param articleId path int true "Article ID"
// @Success 201 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /quiz/generate/{articleId} [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	articleID := middleware.ArticleID(c)
	questions, err := h.service.GenerateQuizForArticle(c.UserContext(), articleID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Data(dto.QuizResponse{
		ArticleID: articleID,
		Questions: toQuestionResponses(questions),
	}))
}
