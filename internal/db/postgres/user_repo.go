package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (name, email, avatar, is_public)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, user.Name, user.Email, nullString(user.Avatar), user.IsPublic).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, users.ErrEmailAlreadyTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `SELECT id, name, email, avatar, is_public, created_at, updated_at FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// SetVisibility updates the public flag for a user
func (r *postgresUserRepo) SetVisibility(ctx context.Context, id int64, isPublic bool) (*users.User, error) {
	query := `
		UPDATE users
		SET is_public = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, email, avatar, is_public, created_at, updated_at`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, isPublic))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update visibility: %w", err)
	}
	return user, nil
}

func scanUser(row rowScanner) (*users.User, error) {
	var user users.User
	var avatar sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Email, &avatar, &user.IsPublic, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if avatar.Valid {
		user.Avatar = &avatar.String
	}
	return &user, nil
}
