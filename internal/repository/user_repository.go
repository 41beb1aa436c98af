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

const userColumns = `id "id", email "email", password_hash "password_hash", created_at "created_at"`

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db DBTX) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

// CreateUser inserts the user and fills in its generated id. A taken email
// yields the email-duplicated domain error.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m := fromDomainUser(user)

	query := `INSERT INTO users (email, password_hash, created_at) VALUES (:email, :password_hash, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		if isUniqueViolation(err) {
			return domain.NewEmailDuplicatedError(user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Identity values are read back by the unique email; Oracle has no LastInsertId.
	var id int64
	err := getNamed(ctx, r.db, &id, `SELECT id "id" FROM users WHERE email = :email`, map[string]interface{}{"email": user.Email})
	if err != nil {
		return fmt.Errorf("failed to read created user id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *sqlxUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	err := getNamed(ctx, r.db, &count, `SELECT COUNT(1) "count" FROM users WHERE email = :email`, map[string]interface{}{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}
	return count > 0, nil
}

// GetUserByEmail returns nil, nil when no user has the email.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = :email`
	err := getNamed(ctx, r.db, &user, query, map[string]interface{}{"email": email})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(&user), nil
}

// GetUserByID returns nil, nil when the user does not exist.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = :id`
	err := getNamed(ctx, r.db, &user, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&user), nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
