package dto

// QuestionRequest is one question of an upload.
type QuestionRequest struct {
	Question      string `json:"question" validate:"required,max=2000"`
	CorrectAnswer *bool  `json:"correctAnswer" validate:"required"`
}

// QuizUploadRequest replaces every question of an article. An empty
// questions list clears the set.
// @Description Request body for uploading a quiz set
type QuizUploadRequest struct {
	ArticleID int64             `json:"articleId" validate:"required,gt=0"`
	Questions []QuestionRequest `json:"questions" validate:"required,dive"`
}

// QuizBulkUploadRequest applies several uploads in order.
// @Description Request body for uploading several quiz sets
type QuizBulkUploadRequest struct {
	Quizzes []QuizUploadRequest `json:"quizzes" validate:"required,min=1,dive"`
}

// BulkUploadFailure describes one upload of a bulk request that was not applied.
type BulkUploadFailure struct {
	ArticleID int64  `json:"articleId"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// QuizBulkUploadResponse summarises a bulk upload.
type QuizBulkUploadResponse struct {
	Uploaded []int64             `json:"uploaded"`
	Failed   []BulkUploadFailure `json:"failed"`
}

// QuestionResponse never carries the answer.
type QuestionResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
}

// QuizResponse is the question list of one article.
// @Description Quiz questions of an article
type QuizResponse struct {
	ArticleID int64              `json:"articleId"`
	Questions []QuestionResponse `json:"questions"`
}

// AnswerRequest is one submitted answer.
type AnswerRequest struct {
	ID     int64 `json:"id" validate:"required,gt=0"`
	Answer *bool `json:"answer" validate:"required"`
}

// QuizGradeRequest submits answers for grading.
// @Description Request body for grading a quiz
type QuizGradeRequest struct {
	ArticleID int64           `json:"articleId" validate:"required,gt=0"`
	Answers   []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

// QuizResultResponse pairs a question id with a boolean. In grading results
// CorrectAnswer means "the submitted answer was correct"; in the answer key
// it is the stored correct answer.
type QuizResultResponse struct {
	ID            int64 `json:"id"`
	CorrectAnswer bool  `json:"correctAnswer"`
}

// QuizGradeResponse lists results in submission order.
// @Description Grading results
type QuizGradeResponse struct {
	ArticleID int64                `json:"articleId"`
	Results   []QuizResultResponse `json:"results"`
}
