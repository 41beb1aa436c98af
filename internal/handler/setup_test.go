package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"news-quiz/internal/handler"
	"news-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var testPermits = []string{
	"POST:/api/auth/login",
	"POST:/api/auth/reissue",
	"POST:/api/users",
	"GET:/api/articles",
	"GET:/api/articles/*/with-quiz",
	"GET:/api/quiz/article/*",
}

type mocks struct {
	quiz    *MockQuizService
	article *MockArticleService
	auth    *MockAuthService
	user    *MockUserService
	ai      *MockAIQuizService
}

func setupApp(t *testing.T) (*fiber.App, *mocks) {
	t.Helper()
	m := &mocks{
		quiz:    &MockQuizService{},
		article: &MockArticleService{},
		auth:    &MockAuthService{},
		user:    &MockUserService{},
		ai:      &MockAIQuizService{},
	}
	vm := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.Protected(&MockTokenService{}, middleware.NewPermitList(testPermits)))
	handler.RegisterRoutes(app, handler.Handlers{
		Quiz:    handler.NewQuizHandler(m.quiz, vm),
		Article: handler.NewArticleHandler(m.article, m.quiz, vm),
		Auth:    handler.NewAuthHandler(m.auth, vm, 72*time.Hour),
		User:    handler.NewUserHandler(m.user, vm),
		AI:      handler.NewAIHandler(m.ai, vm),
	}, vm)
	return app, m
}

// doRequest sends body (marshalled unless it is a string) and returns the
// response with its decoded JSON body. authed adds the token the mock token
// service accepts.
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, authed bool) (*http.Response, map[string]interface{}) {
	t.Helper()
	token := ""
	if authed {
		token = "valid"
	}
	return doRequestWithToken(t, app, method, path, body, token)
}

func doRequestWithToken(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp, decoded
}
