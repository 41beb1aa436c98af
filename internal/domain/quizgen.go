package domain

import (
	"context"
)

// QuizType tells multiple-choice and OX (true/false) items apart.
type QuizType string

const (
	QuizTypeMultipleChoice QuizType = "MULTIPLE_CHOICE"
	QuizTypeOX             QuizType = "OX"
)

// GeneratedQuiz is one candidate item returned by a QuizGenerator.
type GeneratedQuiz struct {
	Question string   `json:"question"`
	QuizType QuizType `json:"quizType"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}

// OXAnswer reports the boolean answer of an OX item. ok is false for any
// other item or an answer that is neither O nor X.
func (g GeneratedQuiz) OXAnswer() (answer bool, ok bool) {
	if g.QuizType != QuizTypeOX {
		return false, false
	}
	switch g.Answer {
	case "O", "o", "true", "TRUE", "True":
		return true, true
	case "X", "x", "false", "FALSE", "False":
		return false, true
	}
	return false, false
}

// QuizGenerator turns article text into candidate quiz items.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, title, content string) ([]GeneratedQuiz, error)
}
