package handler

import (
	"news-quiz/internal/domain"
	"news-quiz/internal/dto"
)

func toQuestionResponses(questions []*domain.QuizQuestion) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionResponse{ID: q.ID, Question: q.Question})
	}
	return out
}

func toArticleResponse(a *domain.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:          a.ID,
		ArticleID:   a.ArticleID,
		CategoryID:  a.CategoryID,
		ImageURL:    a.ImageURL,
		Title:       a.Title,
		Description: a.Description,
		Source:      a.Source,
		Date:        a.Date,
	}
}

func toQuizUpload(req dto.QuizUploadRequest) domain.QuizUpload {
	upload := domain.QuizUpload{
		ArticleID: req.ArticleID,
		Questions: make([]domain.QuestionInput, 0, len(req.Questions)),
	}
	for _, q := range req.Questions {
		upload.Questions = append(upload.Questions, domain.QuestionInput{
			Question:      q.Question,
			CorrectAnswer: *q.CorrectAnswer,
		})
	}
	return upload
}
