package quizgen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"news-quiz/internal/config"
	"news-quiz/internal/domain"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReply = `{"qna":[
  {"question":"The central bank raised rates.","quizType":"OX","options":[],"answer":"O"},
  {"question":"Who raised rates?","quizType":"MULTIPLE_CHOICE","options":["The bank","The mayor"],"answer":"The bank"},
  {"question":"","quizType":"OX","answer":"X"},
  {"question":"Odd one","quizType":"ESSAY","answer":"?"}
]}`

func TestParseQuizResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain", raw: sampleReply, want: 2},
		{name: "think block and prose", raw: "<think>hmm {not this}</think>\nSure! " + sampleReply + "\nDone.", want: 2},
		{name: "lowercase type", raw: `{"qna":[{"question":"q","quizType":"ox","answer":"X"}]}`, want: 1},
		{name: "empty list", raw: `{"qna":[]}`, want: 0},
		{name: "no json", raw: "I cannot help with that", wantErr: true},
		{name: "broken json", raw: `{"qna":[{"question":}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := parseQuizResponse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestParseQuizResponse_Fields(t *testing.T) {
	items, err := parseQuizResponse(sampleReply)
	require.NoError(t, err)

	assert.Equal(t, domain.QuizTypeOX, items[0].QuizType)
	answer, ok := items[0].OXAnswer()
	assert.True(t, ok)
	assert.True(t, answer)

	assert.Equal(t, domain.QuizTypeMultipleChoice, items[1].QuizType)
	assert.Equal(t, []string{"The bank", "The mayor"}, items[1].Options)
}

func TestOpenAIGenerator_GenerateQuiz(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{{
				Index:   0,
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: sampleReply},
			}},
		})
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	g := NewOpenAIGeneratorWithConfig(cfg, "", 0.2)

	items, err := g.GenerateQuiz(context.Background(), "Rates", "The central bank raised rates.")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, openai.GPT4oMini, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "Rates\nThe central bank raised rates.", got.Messages[1].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, got.ResponseFormat.Type)
}

func TestOpenAIGenerator_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	_, err := NewOpenAIGeneratorWithConfig(cfg, "gpt-4o", 0).GenerateQuiz(context.Background(), "t", "c")
	assert.Error(t, err)
}

func TestOllamaGenerator_GenerateQuiz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req["model"])
		assert.Equal(t, "json", req["format"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":   "llama3",
			"message": map[string]any{"role": "assistant", "content": sampleReply},
			"done":    true,
		})
	}))
	defer srv.Close()

	g, err := NewOllamaGenerator(srv.URL, "llama3", 0.1)
	require.NoError(t, err)

	items, err := g.GenerateQuiz(context.Background(), "Rates", "body")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestNew(t *testing.T) {
	g, err := New(config.AIConfig{Provider: ProviderOpenAI})
	require.NoError(t, err)
	assert.Nil(t, g)

	g, err = New(config.AIConfig{Provider: ProviderOpenAI, OpenAIAPIKey: "k", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIGenerator{}, g)

	g, err = New(config.AIConfig{Provider: ProviderOllama, OllamaServerURL: "http://localhost:11434", Model: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &OllamaGenerator{}, g)

	_, err = New(config.AIConfig{Provider: ProviderOllama})
	assert.Error(t, err)

	g, err = New(config.AIConfig{Provider: "none"})
	require.NoError(t, err)
	assert.Nil(t, g)

	_, err = New(config.AIConfig{Provider: "gemini"})
	assert.Error(t, err)
}
