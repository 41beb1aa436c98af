package models

import (
	"database/sql"
	"time"
)

// Article is a row of the articles table. Text columns are nullable because
// Oracle stores empty strings as NULL.
type Article struct {
	ID            int64          `db:"id"`
	ArticleID     string         `db:"article_id"`
	CategoryID    int64          `db:"category_id"`
	ImageURL      sql.NullString `db:"image_url"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	Source        sql.NullString `db:"source"`
	PublishedDate sql.NullString `db:"published_date"`
	CreatedAt     time.Time      `db:"created_at"`
}

// QuizQuestion is a row of the quiz_questions table. correct_answer is a
// 0/1 number in both schemas.
type QuizQuestion struct {
	ID            int64     `db:"id"`
	ArticleID     int64     `db:"article_id"`
	Question      string    `db:"question"`
	CorrectAnswer int       `db:"correct_answer"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
