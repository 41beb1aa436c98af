package middleware

import (
	"strings"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"
	"news-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
	UserKey             = "user"
)

// PermitList holds the routes that skip authentication. Entries look like
// "GET:/api/articles/*/with-quiz"; "*" matches exactly one path segment and a
// trailing "/**" matches any suffix, including none.
type PermitList struct {
	rules []permitRule
}

type permitRule struct {
	method    string
	segments  []string
	anySuffix bool
}

func NewPermitList(entries []string) *PermitList {
	p := &PermitList{}
	for _, e := range entries {
		method, path, ok := strings.Cut(strings.TrimSpace(e), ":")
		if !ok || path == "" {
			logger.Get().Warn("Ignoring malformed permit entry", zap.String("entry", e))
			continue
		}
		rule := permitRule{method: strings.ToUpper(method)}
		if strings.HasSuffix(path, "/**") {
			rule.anySuffix = true
			path = strings.TrimSuffix(path, "/**")
		}
		rule.segments = splitPath(path)
		p.rules = append(p.rules, rule)
	}
	return p
}

// Permits reports whether method and path may be served without a token.
func (p *PermitList) Permits(method, path string) bool {
	if p == nil {
		return false
	}
	segs := splitPath(path)
	for _, r := range p.rules {
		if r.method != "*" && r.method != method {
			continue
		}
		if r.matches(segs) {
			return true
		}
	}
	return false
}

func (r permitRule) matches(segs []string) bool {
	if len(segs) < len(r.segments) || (!r.anySuffix && len(segs) != len(r.segments)) {
		return false
	}
	for i, want := range r.segments {
		if want != "*" && want != segs[i] {
			return false
		}
	}
	return true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Protected requires a valid access token of an existing user on every route
// not in permits. The user and its id are stored under UserKey and UserIDKey.
func Protected(tokens service.TokenService, permits *PermitList) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions || permits.Permits(c.Method(), c.Path()) {
			return c.Next()
		}

		token, err := BearerToken(c)
		if err != nil {
			return err
		}
		user, err := tokens.GetAuthenticatedUser(c.UserContext(), token)
		if err != nil {
			return err
		}

		c.Locals(UserIDKey, user.ID)
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(AuthorizationHeader)
	if header == "" {
		return "", domain.NewMalformedTokenError(nil)
	}
	if !strings.HasPrefix(header, BearerSchema) {
		return "", domain.NewMalformedTokenError(nil)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerSchema))
	if token == "" {
		return "", domain.NewMalformedTokenError(nil)
	}
	return token, nil
}

// UserID returns the id stored by Protected.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(UserIDKey).(int64)
	return id, ok
}

// CurrentUser returns the user stored by Protected.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	u, ok := c.Locals(UserKey).(*domain.User)
	return u, ok && u != nil
}
