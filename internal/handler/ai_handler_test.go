package handler_test

import (
	"context"
	"net/http"
	"testing"

	"news-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIHandler_GenerateQuiz(t *testing.T) {
	app, m := setupApp(t)
	m.ai.GenerateQuizFunc = func(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error) {
		assert.Equal(t, "Rates", title)
		return []domain.GeneratedQuiz{
			{Question: "Rates rose.", QuizType: domain.QuizTypeOX, Answer: "O"},
			{Question: "Who?", QuizType: domain.QuizTypeMultipleChoice, Options: []string{"A", "B"}, Answer: "A"},
		}, nil
	}

	resp, body := doRequest(t, app, http.MethodPost, "/api/ai/quiz",
		map[string]string{"title": "Rates", "content": "The bank raised rates."}, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	qna := body["data"].(map[string]interface{})["qna"].([]interface{})
	require.Len(t, qna, 2)
	assert.Equal(t, "OX", qna[0].(map[string]interface{})["quizType"])
	assert.Equal(t, []interface{}{"A", "B"}, qna[1].(map[string]interface{})["options"])
}

func TestAIHandler_GenerateQuiz_Errors(t *testing.T) {
	t.Run("missing content", func(t *testing.T) {
		app, _ := setupApp(t)
		resp, body := doRequest(t, app, http.MethodPost, "/api/ai/quiz", map[string]string{"title": "t"}, true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, string(domain.ErrInvalidInput), body["code"])
	})

	t.Run("generator unavailable", func(t *testing.T) {
		app, m := setupApp(t)
		m.ai.GenerateQuizFunc = func(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error) {
			return nil, domain.ErrorAIService
		}
		resp, body := doRequest(t, app, http.MethodPost, "/api/ai/quiz",
			map[string]string{"title": "t", "content": "c"}, true)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, string(domain.ErrAIServiceError), body["code"])
	})
}
