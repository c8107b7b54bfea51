package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

const followColumns = `id, follower_id, following_id, status, created_at, updated_at`

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow repository
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Create inserts a follow edge
func (r *postgresFollowRepo) Create(ctx context.Context, follow *follows.Follow) error {
	query := `
		INSERT INTO follows (follower_id, following_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, follow.FollowerID, follow.FollowingID, string(follow.Status)).
		Scan(&follow.ID, &follow.CreatedAt, &follow.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code.Name() {
			case "unique_violation":
				return follows.ErrAlreadyFollowing
			case "foreign_key_violation":
				return follows.ErrUserNotFound
			case "check_violation":
				return follows.ErrCannotFollowSelf
			}
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

// GetByID retrieves a follow edge by id
func (r *postgresFollowRepo) GetByID(ctx context.Context, id int64) (*follows.Follow, error) {
	query := `SELECT ` + followColumns + ` FROM follows WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByPair retrieves the edge from followerID to followingID
func (r *postgresFollowRepo) GetByPair(ctx context.Context, followerID, followingID int64) (*follows.Follow, error) {
	query := `SELECT ` + followColumns + ` FROM follows WHERE follower_id = $1 AND following_id = $2`
	return r.getOne(ctx, query, followerID, followingID)
}

// UpdateStatus sets the status of a follow edge
func (r *postgresFollowRepo) UpdateStatus(ctx context.Context, id int64, status follows.Status) (*follows.Follow, error) {
	query := `
		UPDATE follows
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + followColumns
	return r.getOne(ctx, query, id, string(status))
}

// Delete removes a follow edge
func (r *postgresFollowRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM follows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return follows.ErrFollowNotFound
	}
	return nil
}

// ListAcceptedFollowingIDs returns ids of users followerID follows with accepted status
func (r *postgresFollowRepo) ListAcceptedFollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	query := `
		SELECT following_id
		FROM follows
		WHERE follower_id = $1 AND status = 'accepted'
		ORDER BY following_id`

	rows, err := r.db.QueryContext(ctx, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan followed user: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follows: %w", err)
	}
	return ids, nil
}

// ListPending returns pending requests targeting userID with the requester hydrated
func (r *postgresFollowRepo) ListPending(ctx context.Context, userID int64) ([]*follows.Follow, error) {
	query := `
		SELECT f.id, f.follower_id, f.following_id, f.status, f.created_at, f.updated_at,
		       u.id, u.name, u.avatar
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1 AND f.status = 'pending'
		ORDER BY f.created_at, f.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending follows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*follows.Follow{}
	for rows.Next() {
		f := &follows.Follow{Follower: &users.Summary{}}
		var status string
		var avatar sql.NullString
		err := rows.Scan(
			&f.ID, &f.FollowerID, &f.FollowingID, &status, &f.CreatedAt, &f.UpdatedAt,
			&f.Follower.ID, &f.Follower.Name, &avatar,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		f.Status = follows.Status(status)
		if avatar.Valid {
			f.Follower.Avatar = &avatar.String
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follows: %w", err)
	}
	return result, nil
}

func (r *postgresFollowRepo) getOne(ctx context.Context, query string, args ...interface{}) (*follows.Follow, error) {
	var f follows.Follow
	var status string

	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&f.ID, &f.FollowerID, &f.FollowingID, &status, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, follows.ErrFollowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get follow: %w", err)
	}
	f.Status = follows.Status(status)
	return &f, nil
}
