package handler

import (
	"time"

	"news-quiz/internal/domain"
	"news-quiz/internal/dto"
	"news-quiz/internal/middleware"
	"news-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	RefreshTokenCookie      = "refreshToken"
	defaultRefreshCookieTTL = 72 * time.Hour
)

type AuthHandler struct {
	authService service.AuthService
	validator   *middleware.ValidationMiddleware
	cookieTTL   time.Duration
}

// NewAuthHandler creates an AuthHandler. cookieTTL sets the refresh cookie
// max-age and defaults to three days.
func NewAuthHandler(authService service.AuthService, validator *middleware.ValidationMiddleware, cookieTTL time.Duration) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = defaultRefreshCookieTTL
	}
	return &AuthHandler{authService: authService, validator: validator, cookieTTL: cookieTTL}
}

// Login godoc
// @Summary Log in
// @Description Returns a token pair. The access token is also sent in the Authorization header and the refresh token as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	pair, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return h.sendTokens(c, pair)
}

// Reissue godoc
// @Summary Reissue tokens
// @Description Exchanges the refresh token (cookie first, then body) for a new pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ReissueRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/reissue [post]
func (h *AuthHandler) Reissue(c *fiber.Ctx) error {
	token := c.Cookies(RefreshTokenCookie)
	if token == "" && len(c.Body()) > 0 {
		var req dto.ReissueRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewValidationError("request body is not valid JSON")
		}
		token = req.RefreshToken
	}
	if token == "" {
		return domain.NewMalformedTokenError(nil)
	}

	pair, err := h.authService.Reissue(c.UserContext(), token)
	if err != nil {
		return err
	}
	return h.sendTokens(c, pair)
}

// Logout godoc
// @Summary Log out
// @Description Deletes the stored refresh token and clears the cookie
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domain.NewMalformedTokenError(nil)
	}
	if err := h.authService.Logout(c.UserContext(), userID); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})
	return c.JSON(dto.Data(dto.MessageResponse{Message: "Logged out"}))
}

func (h *AuthHandler) sendTokens(c *fiber.Ctx, pair *domain.TokenPair) error {
	c.Set(middleware.AuthorizationHeader, middleware.BearerSchema+pair.AccessToken)
	c.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(h.cookieTTL / time.Second),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.Data(dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}))
}
