package repository

import (
	"context"
	"regexp"
	"testing"

	"news-quiz/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenRepository_SQLite_Upsert(t *testing.T) {
	db := setupSQLiteDB(t)
	users := NewSQLXUserRepository(db)
	repo := NewSQLXRefreshTokenRepository(db)
	ctx := context.Background()

	user := domain.NewUser("user@example.com", "hash")
	require.NoError(t, users.CreateUser(ctx, user))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.SaveOrUpdate(ctx, user.ID, "token-1"))
	require.NoError(t, repo.SaveOrUpdate(ctx, user.ID, "token-2"))

	got, err = repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "token-2", got.RefreshToken)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM refresh_tokens WHERE user_id = ?`, user.ID))
	assert.Equal(t, 1, count)

	require.NoError(t, repo.DeleteByUserID(ctx, user.ID))
	got, err = repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRefreshTokenRepository_SaveOrUpdate_InsertsWhenNoRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSQLXRefreshTokenRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE refresh_tokens SET refresh_token = ?, updated_at = ? WHERE user_id = ?`)).
		WithArgs("tok", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO refresh_tokens (user_id, refresh_token, updated_at)`)).
		WithArgs(int64(7), "tok", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveOrUpdate(context.Background(), 7, "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_SaveOrUpdate_UpdatesExisting(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSQLXRefreshTokenRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE refresh_tokens`)).
		WithArgs("tok", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveOrUpdate(context.Background(), 7, "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
