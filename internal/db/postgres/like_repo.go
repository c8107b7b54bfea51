package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/naatiworlds/Recetagrm-api/internal/core/likes"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Create inserts a like
// Idempotent: a second like by the same user is a no-op
func (r *postgresLikeRepo) Create(ctx context.Context, userID, postID int64) error {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, postID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return likes.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// Delete removes a like if present
func (r *postgresLikeRepo) Delete(ctx context.Context, userID, postID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// CountByPost counts the likes on a post
func (r *postgresLikeRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
