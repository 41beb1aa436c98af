package handler

import (
	"news-quiz/internal/dto"
	"news-quiz/internal/middleware"
	"news-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	ai        service.AIQuizService
	validator *middleware.ValidationMiddleware
}

func NewAIHandler(ai service.AIQuizService, validator *middleware.ValidationMiddleware) *AIHandler {
	return &AIHandler{ai: ai, validator: validator}
}

// GenerateQuiz godoc
// @Summary Generate quiz candidates from text
// @Description Returns multiple-choice and OX items for the given title and content without storing them
// @Tags ai
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AIQuizRequest true "Article text"
// @Success 200 {object} dto.AIQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /ai/quiz [post]
func (h *AIHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.AIQuizRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	items, err := h.ai.GenerateQuiz(c.UserContext(), req.Title, req.Content)
	if err != nil {
		return err
	}

	resp := dto.AIQuizResponse{QNA: make([]dto.GeneratedQuizResponse, 0, len(items))}
	for _, item := range items {
		resp.QNA = append(resp.QNA, dto.GeneratedQuizResponse{
			Question: item.Question,
			QuizType: string(item.QuizType),
			Options:  item.Options,
			Answer:   item.Answer,
		})
	}
	return c.JSON(dto.Data(resp))
}
