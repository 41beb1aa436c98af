package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"news-quiz/internal/domain"
	"news-quiz/internal/repository/models"
)

type sqlxRefreshTokenRepository struct {
	db  DBTX
	now func() time.Time
}

func NewSQLXRefreshTokenRepository(db DBTX) domain.RefreshTokenRepository {
	return &sqlxRefreshTokenRepository{db: db, now: time.Now}
}

// SaveOrUpdate overwrites the user's row, inserting it when the user has none.
// Callers run it inside a transaction so the update/insert pair is atomic.
func (r *sqlxRefreshTokenRepository) SaveOrUpdate(ctx context.Context, userID int64, token string) error {
	exec := GetExecutor(ctx, r.db)
	arg := models.RefreshToken{UserID: userID, RefreshToken: token, UpdatedAt: r.now()}

	res, err := exec.NamedExecContext(ctx,
		`UPDATE refresh_tokens SET refresh_token = :refresh_token, updated_at = :updated_at WHERE user_id = :user_id`, arg)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	_, err = exec.NamedExecContext(ctx,
		`INSERT INTO refresh_tokens (user_id, refresh_token, updated_at) VALUES (:user_id, :refresh_token, :updated_at)`, arg)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

// GetByUserID returns nil, nil when the user holds no refresh token.
func (r *sqlxRefreshTokenRepository) GetByUserID(ctx context.Context, userID int64) (*domain.RefreshToken, error) {
	var m models.RefreshToken
	query := `SELECT id "id", user_id "user_id", refresh_token "refresh_token", updated_at "updated_at"
	          FROM refresh_tokens WHERE user_id = :user_id`
	err := getNamed(ctx, r.db, &m, query, map[string]interface{}{"user_id": userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &domain.RefreshToken{
		ID:           m.ID,
		UserID:       m.UserID,
		RefreshToken: m.RefreshToken,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func (r *sqlxRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	_, err := GetExecutor(ctx, r.db).NamedExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE user_id = :user_id`, map[string]interface{}{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
