package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"
	"news-quiz/internal/metrics"
	"news-quiz/internal/util"

	"go.uber.org/zap"
)

// maxGeneratorInput bounds the article text sent to the generator.
const maxGeneratorInput = 12000

// AIQuizService asks the configured generator for quiz candidates.
type AIQuizService interface {
	GenerateQuiz(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error)
}

type aiQuizServiceImpl struct {
	generator domain.QuizGenerator
	timeout   time.Duration
}

// NewAIQuizService wraps generator. A nil generator makes every call fail
// with an AI service error.
func NewAIQuizService(generator domain.QuizGenerator, timeout time.Duration) AIQuizService {
	return &aiQuizServiceImpl{generator: generator, timeout: timeout}
}

func (s *aiQuizServiceImpl) GenerateQuiz(ctx context.Context, title, content string) ([]domain.GeneratedQuiz, error) {
	if s.generator == nil {
		return nil, domain.NewAIServiceError(errors.New("no quiz generator configured"))
	}

	title = util.StripHTML(title)
	content = util.StripHTML(content)
	if content == "" {
		return nil, domain.NewValidationError("content is empty")
	}
	content = truncateUTF8(content, maxGeneratorInput)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	items, err := s.generator.GenerateQuiz(ctx, title, content)
	metrics.RecordAIGeneration(err, time.Since(start))
	if err != nil {
		logger.Get().Error("Quiz generation failed", zap.String("title", title), zap.Error(err))
		var de *domain.DomainError
		if errors.As(err, &de) {
			return nil, de
		}
		return nil, domain.NewAIServiceError(err)
	}

	valid := items[:0]
	for _, item := range items {
		if strings.TrimSpace(item.Question) == "" {
			continue
		}
		valid = append(valid, item)
	}
	if len(valid) == 0 {
		return nil, domain.NewAIServiceError(errors.New("generator returned no usable items"))
	}
	logger.Get().Info("Quiz generated", zap.String("title", title), zap.Int("items", len(valid)))
	return valid, nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
