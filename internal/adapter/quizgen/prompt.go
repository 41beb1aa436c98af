package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"news-quiz/internal/domain"
	"news-quiz/internal/logger"

	"go.uber.org/zap"
)

const systemPrompt = `You are an expert quiz generator. Read the provided article and extract its core concepts, key facts, definitions and processes.

Respond with a single valid JSON object and nothing else. The object has one root key "qna" holding a list of quiz items:

{
  "qna": [
    {
      "question": "A specific question derived from the text.",
      "quizType": "MULTIPLE_CHOICE or OX",
      "options": ["Option A", "Option B", "Option C"],
      "answer": "The correct option text."
    }
  ]
}

Rules:
1. quizType is either "MULTIPLE_CHOICE" or "OX".
2. Use OX for clear declarative facts. The question is a statement and answer is "O" when it is true or "X" when it is false. options is [].
3. Use MULTIPLE_CHOICE for definitions, comparisons and lists. Give 3-4 plausible options. answer must match exactly one option.
4. Every question must be self-contained and focus on a single piece of information.
5. Cover all significant and learnable aspects of the text.`

// userPrompt joins title and content the way the generator expects them.
func userPrompt(title, content string) string {
	return title + "\n" + content
}

type qnaEnvelope struct {
	QNA []domain.GeneratedQuiz `json:"qna"`
}

// parseQuizResponse pulls the {"qna": [...]} object out of a raw model reply.
// Reasoning blocks and surrounding prose are ignored. Items without a question
// or with an unknown type are dropped.
func parseQuizResponse(raw string) ([]domain.GeneratedQuiz, error) {
	cleaned := strings.TrimSpace(raw)
	if start := strings.Index(cleaned, "<think>"); start != -1 {
		if end := strings.Index(cleaned, "</think>"); end > start {
			cleaned = strings.TrimSpace(cleaned[:start] + cleaned[end+len("</think>"):])
		}
	}

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		return nil, fmt.Errorf("no JSON object found in model response")
	}

	var env qnaEnvelope
	if err := json.Unmarshal([]byte(cleaned[jsonStart:jsonEnd+1]), &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model response: %w", err)
	}

	items := make([]domain.GeneratedQuiz, 0, len(env.QNA))
	for _, item := range env.QNA {
		item.Question = strings.TrimSpace(item.Question)
		item.Answer = strings.TrimSpace(item.Answer)
		item.QuizType = domain.QuizType(strings.ToUpper(strings.TrimSpace(string(item.QuizType))))
		if item.Question == "" {
			continue
		}
		if item.QuizType != domain.QuizTypeOX && item.QuizType != domain.QuizTypeMultipleChoice {
			logger.Get().Debug("Dropping quiz item with unknown type", zap.String("quizType", string(item.QuizType)))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
