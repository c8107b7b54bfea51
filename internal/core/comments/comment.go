package comments

import (
	"time"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

// Comment represents a comment left on a recipe post
type Comment struct {
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
	Author    *users.Summary `json:"user,omitempty" db:"-"`
	Content   string         `json:"content" db:"content"`
	ID        int64          `json:"id" db:"id"`
	PostID    int64          `json:"post_id" db:"post_id"`
	UserID    int64          `json:"user_id" db:"user_id"`
}

// CreateCommentRequest is the body of POST /posts/{id}/comments
type CreateCommentRequest struct {
	Content string `json:"content"`
}
