package posts

import (
	"encoding/json"
	"io"
	"time"

	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

// Post is a recipe post as stored in the posts table
type Post struct {
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
	ImageURL    *string         `json:"image_url" db:"imagen"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Ingredients json.RawMessage `json:"ingredients" db:"ingredients"`
	ID          int64           `json:"id" db:"id"`
	UserID      int64           `json:"user_id" db:"user_id"`
}

// PostView is the enriched read-model returned by feeds and single-post reads.
// Comments is only populated by GetPost.
type PostView struct {
	Post
	User         *users.Summary      `json:"user"`
	LikedBy      []users.Summary     `json:"liked_by"`
	Comments     []*comments.Comment `json:"comments,omitempty"`
	LikeCount    int                 `json:"like_count"`
	CommentCount int                 `json:"comment_count"`
}

// ImageFile is an uploaded image handed from the HTTP layer to the service
type ImageFile struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// CreatePostRequest carries already-validated create fields.
// Ingredients has been decoded from its JSON string form at the boundary.
type CreatePostRequest struct {
	Image       *ImageFile
	Title       string
	Description string
	Ingredients json.RawMessage
}

// UpdatePostRequest carries optional fields; nil means "leave unchanged"
type UpdatePostRequest struct {
	Title       *string
	Description *string
	Image       *ImageFile
	Ingredients json.RawMessage
}

// IsEmpty reports whether no field was supplied
func (r UpdatePostRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Image == nil && r.Ingredients == nil
}

// ListFilter selects which posts ListViews returns.
// A nil OwnerIDs means any owner; an empty non-nil slice matches nothing.
type ListFilter struct {
	OwnerIDs   []int64
	PublicOnly bool
}
