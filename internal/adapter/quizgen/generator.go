package quizgen

import (
	"fmt"

	"news-quiz/internal/config"
	"news-quiz/internal/domain"
	"news-quiz/internal/logger"

	"go.uber.org/zap"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// New returns the generator selected by cfg.Provider. It returns nil, nil when
// the provider is "none" or OpenAI is chosen without a key, so the API still
// starts with AI endpoints answering with an AI service error.
func New(cfg config.AIConfig) (domain.QuizGenerator, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			logger.Get().Warn("No OpenAI API key configured, quiz generation disabled")
			return nil, nil
		}
		g, err := NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.Model, cfg.Temperature)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderOllama:
		g, err := NewOllamaGenerator(cfg.OllamaServerURL, cfg.Model, cfg.Temperature)
		if err != nil {
			return nil, err
		}
		logger.Get().Info("Using Ollama quiz generator", zap.String("server", cfg.OllamaServerURL), zap.String("model", cfg.Model))
		return g, nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
