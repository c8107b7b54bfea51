package posts

import (
	"context"
	"errors"

	"github.com/naatiworlds/Recetagrm-api/internal/core/images"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

type postService struct {
	repo      Repository
	follows   FollowLister
	images    images.Store
	uploadOpt images.UploadOptions
}

// NewPostService creates a new post service.
// uploadOpt is applied to every image upload (folder, quality policy).
func NewPostService(
	repo Repository,
	follows FollowLister,
	store images.Store,
	uploadOpt images.UploadOptions,
) Service {
	return &postService{
		repo:      repo,
		follows:   follows,
		images:    store,
		uploadOpt: uploadOpt,
	}
}

// ListPosts returns every post with owner, likers and counts
func (s *postService) ListPosts(ctx context.Context) ([]*PostView, error) {
	return s.listViews(ctx, "list", ListFilter{})
}

// ListFilteredPosts records the filters and returns the unfiltered list.
// No filter predicates are defined yet.
func (s *postService) ListFilteredPosts(ctx context.Context, filters map[string]string) ([]*PostView, error) {
	fields := logger.Fields{"op": "list_filtered"}
	for k, v := range filters {
		fields["filter_"+k] = v
	}
	logger.InfoWithFields("filtered post listing requested", fields)

	return s.listViews(ctx, "list_filtered", ListFilter{})
}

// CreatePost uploads the image, persists the post and returns its read-model
func (s *postService) CreatePost(ctx context.Context, ownerID int64, req CreatePostRequest) (*PostView, error) {
	post := &Post{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
	}

	if req.Image != nil {
		url, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			logger.ErrorWithFields("post create: image upload failed", logger.Fields{
				"op":      "create",
				"user_id": ownerID,
				"error":   err.Error(),
			})
			return nil, &ImageUploadError{Op: "create", Err: err}
		}
		post.ImageURL = &url
	}

	if err := s.repo.Create(ctx, post); err != nil {
		logger.ErrorWithFields("post create: insert failed", logger.Fields{
			"op":      "create",
			"user_id": ownerID,
			"error":   err.Error(),
		})
		if post.ImageURL != nil {
			// the row never existed, so the fresh asset is an orphan
			s.destroyImage(ctx, "create", 0, *post.ImageURL)
		}
		return nil, &PersistenceError{Op: "create", Err: err}
	}

	logger.InfoWithFields("post created", logger.Fields{
		"post_id":   post.ID,
		"user_id":   ownerID,
		"has_image": post.ImageURL != nil,
	})

	return s.loadView(ctx, "create", post.ID, false)
}

// UpdatePost applies the supplied fields to an existing post
func (s *postService) UpdatePost(ctx context.Context, postID int64, req UpdatePostRequest) (*PostView, error) {
	post, err := s.getPost(ctx, "update", postID)
	if err != nil {
		return nil, err
	}

	if req.Image != nil {
		// the old asset stays in place until its replacement exists
		url, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			logger.ErrorWithFields("post update: image upload failed", logger.Fields{
				"op":      "update",
				"post_id": postID,
				"error":   err.Error(),
			})
			return nil, &ImageUploadError{Op: "update", Err: err}
		}

		if post.ImageURL != nil && *post.ImageURL != "" {
			s.destroyImage(ctx, "update", post.ID, *post.ImageURL)
		}
		post.ImageURL = &url
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Ingredients != nil {
		post.Ingredients = req.Ingredients
	}

	if err := s.repo.Update(ctx, post); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewNotFoundError("post", postID)
		}
		logger.ErrorWithFields("post update: write failed", logger.Fields{
			"op":      "update",
			"post_id": postID,
			"error":   err.Error(),
		})
		return nil, &PersistenceError{Op: "update", PostID: postID, Err: err}
	}

	return s.loadView(ctx, "update", postID, false)
}

// GetPost returns the fully enriched post including comments
func (s *postService) GetPost(ctx context.Context, postID int64) (*PostView, error) {
	return s.loadView(ctx, "get", postID, true)
}

// DeletePost removes a post and best-effort destroys its image.
// Image removal failures are logged only.
func (s *postService) DeletePost(ctx context.Context, postID int64) error {
	post, err := s.getPost(ctx, "delete", postID)
	if err != nil {
		return err
	}

	if post.ImageURL != nil && *post.ImageURL != "" {
		s.destroyImage(ctx, "delete", post.ID, *post.ImageURL)
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewNotFoundError("post", postID)
		}
		logger.ErrorWithFields("post delete: write failed", logger.Fields{
			"op":      "delete",
			"post_id": postID,
			"error":   err.Error(),
		})
		return &PersistenceError{Op: "delete", PostID: postID, Err: err}
	}

	logger.InfoWithFields("post deleted", logger.Fields{"post_id": postID, "user_id": post.UserID})
	return nil
}

// ListUserPosts returns the owner's posts, newest first
func (s *postService) ListUserPosts(ctx context.Context, ownerID int64) ([]*Post, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.ErrorWithFields("post list by owner failed", logger.Fields{
			"op":      "list_by_owner",
			"user_id": ownerID,
			"error":   err.Error(),
		})
		return nil, &PersistenceError{Op: "list_by_owner", Err: err}
	}
	if list == nil {
		list = []*Post{}
	}
	return list, nil
}

// ListFollowingFeed returns posts from accepted follows only
func (s *postService) ListFollowingFeed(ctx context.Context, viewerID int64) ([]*PostView, error) {
	ids, err := s.follows.ListAcceptedFollowingIDs(ctx, viewerID)
	if err != nil {
		logger.ErrorWithFields("following feed: follow lookup failed", logger.Fields{
			"op":        "following_feed",
			"viewer_id": viewerID,
			"error":     err.Error(),
		})
		return nil, &PersistenceError{Op: "following_feed", Err: err}
	}
	if len(ids) == 0 {
		return []*PostView{}, nil
	}

	return s.listViews(ctx, "following_feed", ListFilter{OwnerIDs: ids})
}

// ListPublicFeed returns posts of public users
func (s *postService) ListPublicFeed(ctx context.Context) ([]*PostView, error) {
	return s.listViews(ctx, "public_feed", ListFilter{PublicOnly: true})
}

func (s *postService) listViews(ctx context.Context, op string, filter ListFilter) ([]*PostView, error) {
	views, err := s.repo.ListViews(ctx, filter)
	if err != nil {
		logger.ErrorWithFields("post listing failed", logger.Fields{"op": op, "error": err.Error()})
		return nil, &PersistenceError{Op: op, Err: err}
	}
	if views == nil {
		views = []*PostView{}
	}
	return views, nil
}

func (s *postService) getPost(ctx context.Context, op string, postID int64) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewNotFoundError("post", postID)
		}
		logger.ErrorWithFields("post lookup failed", logger.Fields{
			"op":      op,
			"post_id": postID,
			"error":   err.Error(),
		})
		return nil, &PersistenceError{Op: op, PostID: postID, Err: err}
	}
	return post, nil
}

func (s *postService) loadView(ctx context.Context, op string, postID int64, withComments bool) (*PostView, error) {
	view, err := s.repo.GetView(ctx, postID, withComments)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewNotFoundError("post", postID)
		}
		logger.ErrorWithFields("post read failed", logger.Fields{
			"op":      op,
			"post_id": postID,
			"error":   err.Error(),
		})
		return nil, &PersistenceError{Op: op, PostID: postID, Err: err}
	}
	return view, nil
}

func (s *postService) uploadImage(ctx context.Context, img *ImageFile) (string, error) {
	res, err := s.images.Upload(ctx, img.Reader, s.uploadOpt)
	if err != nil {
		return "", err
	}
	if res == nil || res.SecureURL == "" {
		return "", images.ErrNoURL
	}
	return res.SecureURL, nil
}

// destroyImage never fails the caller; a leftover remote asset is only logged
func (s *postService) destroyImage(ctx context.Context, op string, postID int64, url string) {
	fields := logger.Fields{"op": op, "post_id": postID, "image_url": url}

	publicID, ok := images.PublicIDFromURL(url)
	if !ok {
		fields["error"] = images.ErrInvalidImageURL.Error()
		logger.WarnWithFields("image destroy skipped", fields)
		return
	}

	if err := s.images.Destroy(ctx, publicID); err != nil {
		fields["public_id"] = publicID
		fields["error"] = err.Error()
		logger.WarnWithFields("image destroy failed", fields)
	}
}
