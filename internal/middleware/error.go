package middleware

import (
	"errors"
	"net/http"

	"news-quiz/internal/domain"
	"news-quiz/internal/dto"
	"news-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("requestID", c.Locals(RequestIDKey)),
		)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request validation failed", zap.Int("errorCount", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    string(domain.ErrInvalidInput),
				Message: "Invalid input value",
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := StatusFor(domainErr.Code)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
			}
			if domainErr.Err != nil {
				fields = append(fields, zap.Error(domainErr.Err))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", fields...)
			} else {
				log.Info("Request rejected", fields...)
			}
			return c.Status(status).JSON(dto.ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred", zap.Int("status", fiberErr.Code), zap.String("message", fiberErr.Message))
			code := domain.ErrBadRequest
			switch {
			case fiberErr.Code == http.StatusNotFound:
				code = domain.ErrNotFound
			case fiberErr.Code >= http.StatusInternalServerError:
				code = domain.ErrInternal
			}
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Code:    string(code),
				Message: fiberErr.Message,
			})
		}

		log.Error("Unhandled error", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    string(domain.ErrInternal),
			Message: "Internal server error",
		})
	}
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code domain.ErrorCode) int {
	switch code {
	case domain.ErrInvalidInput, domain.ErrMalformedToken, domain.ErrBadRequest:
		return http.StatusBadRequest
	case domain.ErrInvalidSignatureOrExpired, domain.ErrRefreshTokenMismatch,
		domain.ErrInvalidTokenType, domain.ErrPasswordMismatch:
		return http.StatusUnauthorized
	case domain.ErrRefreshTokenNotFound, domain.ErrUserNotFound, domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrEmailDuplicated:
		return http.StatusConflict
	case domain.ErrAIServiceError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
