package middleware

import (
	"strconv"

	"news-quiz/internal/domain"
	"news-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ArticleIDKey holds the parsed :articleId path parameter.
const ArticleIDKey = "validated_article_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// Bind decodes the JSON body into out and validates it.
func (vm *ValidationMiddleware) Bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewValidationError("request body is not valid JSON")
	}
	return vm.validator.Struct(out)
}

// Validate checks an already decoded request.
func (vm *ValidationMiddleware) Validate(req interface{}) error {
	return vm.validator.Struct(req)
}

// NumericArticleID parses :articleId as a positive integer and stores it
// under ArticleIDKey.
func (vm *ValidationMiddleware) NumericArticleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("articleId")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return domain.ValidationErrors{{Field: "articleId", Message: "must be a positive integer"}}
		}
		c.Locals(ArticleIDKey, id)
		return c.Next()
	}
}

// ArticleID returns the id stored by NumericArticleID.
func ArticleID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(ArticleIDKey).(int64)
	return id
}
