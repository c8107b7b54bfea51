package likes

import (
	"context"
	"errors"
	"time"
)

// ErrPostNotFound indicates the liked post doesn't exist
var ErrPostNotFound = errors.New("post not found")

// Like is a user's like on a post. At most one per (user, post).
type Like struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UserID    int64     `json:"user_id" db:"user_id"`
	PostID    int64     `json:"post_id" db:"post_id"`
}

// LikeStatus is returned by like and unlike
type LikeStatus struct {
	PostID    int64 `json:"post_id"`
	LikeCount int   `json:"like_count"`
	Liked     bool  `json:"liked"`
}

// PostChecker validates that the liked post exists
type PostChecker interface {
	Exists(ctx context.Context, postID int64) (bool, error)
}

// Repository defines the data access interface for likes
type Repository interface {
	// Create inserts a like. Idempotent: ON CONFLICT DO NOTHING.
	Create(ctx context.Context, userID, postID int64) error

	// Delete removes a like. Removing a missing like is not an error.
	Delete(ctx context.Context, userID, postID int64) error

	CountByPost(ctx context.Context, postID int64) (int, error)
}

// Service defines the business logic interface for likes
type Service interface {
	Like(ctx context.Context, userID, postID int64) (*LikeStatus, error)
	Unlike(ctx context.Context, userID, postID int64) (*LikeStatus, error)
}
