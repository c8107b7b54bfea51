package posts

import "context"

// Service defines the post lifecycle operations
type Service interface {
	// ListPosts returns every post enriched, newest first
	ListPosts(ctx context.Context) ([]*PostView, error)

	// ListFilteredPosts logs the requested filters and currently returns the
	// same set as ListPosts
	ListFilteredPosts(ctx context.Context, filters map[string]string) ([]*PostView, error)

	// CreatePost uploads the image (if any) before persisting the post.
	// A failed upload aborts the operation with an ImageUploadError.
	CreatePost(ctx context.Context, ownerID int64, req CreatePostRequest) (*PostView, error)

	// UpdatePost applies only the supplied fields. Replacing the image
	// best-effort destroys the old asset; only a failed new upload aborts.
	UpdatePost(ctx context.Context, postID int64, req UpdatePostRequest) (*PostView, error)

	// GetPost returns the post with owner, comments, likers and counts
	GetPost(ctx context.Context, postID int64) (*PostView, error)

	// DeletePost removes the row; the stored image is destroyed best-effort
	DeletePost(ctx context.Context, postID int64) error

	// ListUserPosts returns the owner's posts without enrichment
	ListUserPosts(ctx context.Context, ownerID int64) ([]*Post, error)

	// ListFollowingFeed returns posts of users the viewer follows with accepted status
	ListFollowingFeed(ctx context.Context, viewerID int64) ([]*PostView, error)

	// ListPublicFeed returns posts whose owner is public
	ListPublicFeed(ctx context.Context) ([]*PostView, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error

	// GetView loads the enriched read-model. Comments are included only when
	// withComments is true.
	GetView(ctx context.Context, id int64, withComments bool) (*PostView, error)
	ListViews(ctx context.Context, filter ListFilter) ([]*PostView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Post, error)
}

// FollowLister resolves the users a viewer follows with accepted status
type FollowLister interface {
	ListAcceptedFollowingIDs(ctx context.Context, followerID int64) ([]int64, error)
}
