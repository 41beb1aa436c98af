package quizgen

import (
	"context"
	"errors"
	"fmt"

	"news-quiz/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"
)

// OllamaGenerator runs quiz generation against a local Ollama server.
type OllamaGenerator struct {
	llm         llms.Model
	temperature float64
}

func NewOllamaGenerator(serverURL, model string, temperature float64) (*OllamaGenerator, error) {
	if serverURL == "" {
		return nil, errors.New("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, errors.New("ollama model name cannot be empty")
	}
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithFormat("json"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &OllamaGenerator{llm: llm, temperature: temperature}, nil
}

func (g *OllamaGenerator) GenerateQuiz(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error) {
	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, userPrompt(title, content)),
	}, llms.WithTemperature(g.temperature))
	if err != nil {
		return nil, fmt.Errorf("ollama generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("ollama returned no choices")
	}
	return parseQuizResponse(resp.Choices[0].Content)
}

var _ domain.QuizGenerator = (*OllamaGenerator)(nil)
