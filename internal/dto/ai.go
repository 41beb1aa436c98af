package dto

// AIQuizRequest asks the generator for candidate items.
// @Description Request body for AI quiz generation
type AIQuizRequest struct {
	Title   string `json:"title" validate:"required,max=1000"`
	Content string `json:"content" validate:"required"`
}

// GeneratedQuizResponse is one generated item.
type GeneratedQuizResponse struct {
	Question string   `json:"question"`
	QuizType string   `json:"quizType"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}

// AIQuizResponse is the generator output.
type AIQuizResponse struct {
	QNA []GeneratedQuizResponse `json:"qna"`
}
