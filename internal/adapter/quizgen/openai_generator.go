package quizgen

import (
	"context"
	"errors"
	"fmt"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIGenerator asks an OpenAI chat model for quiz items in JSON mode.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIGenerator builds a generator for the public OpenAI API.
func NewOpenAIGenerator(apiKey, model string, temperature float64) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("openai API key cannot be empty")
	}
	return NewOpenAIGeneratorWithConfig(openai.DefaultConfig(apiKey), model, temperature), nil
}

// NewOpenAIGeneratorWithConfig builds a generator from a full client config,
// e.g. one pointing at a compatible gateway.
func NewOpenAIGeneratorWithConfig(cfg openai.ClientConfig, model string, temperature float64) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: float32(temperature),
	}
}

func (g *OpenAIGenerator) GenerateQuiz(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(title, content)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}

	logger.Get().Debug("OpenAI quiz response received",
		zap.String("model", resp.Model),
		zap.Int("totalTokens", resp.Usage.TotalTokens))

	return parseQuizResponse(resp.Choices[0].Message.Content)
}

var _ domain.QuizGenerator = (*OpenAIGenerator)(nil)
