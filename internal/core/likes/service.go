package likes

import (
	"context"
	"fmt"

	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

type likeService struct {
	repo  Repository
	posts PostChecker
}

// NewLikeService creates a new like service
func NewLikeService(repo Repository, posts PostChecker) Service {
	return &likeService{repo: repo, posts: posts}
}

// Like records a like; liking twice leaves a single like
func (s *likeService) Like(ctx context.Context, userID, postID int64) (*LikeStatus, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, userID, postID); err != nil {
		logger.ErrorWithFields("failed to like post", logger.Fields{
			"user_id": userID,
			"post_id": postID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	return s.status(ctx, postID, true)
}

// Unlike removes a like; unliking a post that was never liked succeeds
func (s *likeService) Unlike(ctx context.Context, userID, postID int64) (*LikeStatus, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, userID, postID); err != nil {
		logger.ErrorWithFields("failed to unlike post", logger.Fields{
			"user_id": userID,
			"post_id": postID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("failed to unlike post: %w", err)
	}

	return s.status(ctx, postID, false)
}

func (s *likeService) status(ctx context.Context, postID int64, liked bool) (*LikeStatus, error) {
	count, err := s.repo.CountByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	return &LikeStatus{PostID: postID, Liked: liked, LikeCount: count}, nil
}

func (s *likeService) requirePost(ctx context.Context, postID int64) error {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to check post: %w", err)
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}
