package comments

import "context"

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a comment and fills in ID and timestamps
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment; returns ErrCommentNotFound when absent
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Delete removes a comment; returns ErrCommentNotFound when absent
	Delete(ctx context.Context, id int64) error

	// ListByPost returns a post's comments oldest first, authors hydrated
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// PostChecker reports whether a post exists.
// Implemented by the post repository.
type PostChecker interface {
	Exists(ctx context.Context, postID int64) (bool, error)
}

// Service defines the business logic interface for comments
type Service interface {
	AddComment(ctx context.Context, postID, authorID int64, req CreateCommentRequest) (*Comment, error)
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)
	DeleteComment(ctx context.Context, commentID, callerID int64) error
}
