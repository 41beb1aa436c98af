package dto

// ArticleUploadRequest is one article of an upload.
type ArticleUploadRequest struct {
	ArticleID   string `json:"articleId" validate:"required,max=255"`
	CategoryID  int64  `json:"categoryId" validate:"gte=0"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url,max=1024"`
	Title       string `json:"title" validate:"required,max=1000"`
	Description string `json:"description"`
	Source      string `json:"source" validate:"max=255"`
	Date        string `json:"date" validate:"max=64"`
}

// ArticleUploadListRequest wraps a batch of articles.
// @Description Request body for uploading articles
type ArticleUploadListRequest struct {
	Articles []ArticleUploadRequest `json:"articles" validate:"required,min=1,dive"`
}

// ArticleResponse describes one article.
// @Description Article information
type ArticleResponse struct {
	ID          int64  `json:"id"`
	ArticleID   string `json:"articleId"`
	CategoryID  int64  `json:"categoryId"`
	ImageURL    string `json:"imageUrl"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Date        string `json:"date"`
}

// ArticleWithQuizResponse joins an article with its questions.
// @Description Article with its quiz questions
type ArticleWithQuizResponse struct {
	Article  ArticleResponse    `json:"article"`
	QuizList []QuestionResponse `json:"quizList"`
}
