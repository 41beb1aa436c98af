package handler

import (
	"news-quiz/internal/domain"
	"news-quiz/internal/dto"
	"news-quiz/internal/middleware"
	"news-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService service.UserService
	validator   *middleware.ValidationMiddleware
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, validator *middleware.ValidationMiddleware) *UserHandler {
	return &UserHandler{userService: userService, validator: validator}
}

// SignUp godoc
// @Summary Create an account
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Email and password"
// @Success 201 {object} dto.SignUpResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users [post]
func (h *UserHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	id, err := h.userService.CreateUser(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Data(dto.SignUpResponse{UserID: id}))
}

// GetMyProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the profile information for the authenticated user.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domain.NewMalformedTokenError(nil)
	}
	user, err := h.userService.GetUserProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.Data(dto.UserProfileResponse{ID: user.ID, Email: user.Email}))
}
