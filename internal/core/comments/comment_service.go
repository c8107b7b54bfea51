package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

const (
	// maxCommentGraphemes counts user-perceived characters, not bytes
	maxCommentGraphemes = 1000
)

type commentService struct {
	repo  Repository
	posts PostChecker
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, posts PostChecker) Service {
	return &commentService{
		repo:  repo,
		posts: posts,
	}
}

// AddComment validates content and stores a comment on an existing post
func (s *commentService) AddComment(ctx context.Context, postID, authorID int64, req CreateCommentRequest) (*Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentEmpty
	}
	if uniseg.GraphemeClusterCount(content) > maxCommentGraphemes {
		return nil, ErrContentTooLong
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		logger.ErrorWithFields("failed to create comment", logger.Fields{
			"post_id": postID,
			"user_id": authorID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	logger.InfoWithFields("comment created", logger.Fields{
		"comment_id": comment.ID,
		"post_id":    postID,
		"user_id":    authorID,
	})

	// reload so the response carries the author summary
	created, err := s.repo.GetByID(ctx, comment.ID)
	if err != nil {
		return comment, nil
	}
	return created, nil
}

// ListComments returns a post's comments, oldest first
func (s *commentService) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		logger.ErrorWithFields("failed to list comments", logger.Fields{
			"post_id": postID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if list == nil {
		list = []*Comment{}
	}
	return list, nil
}

// DeleteComment removes a comment. Only its author may delete it.
func (s *commentService) DeleteComment(ctx context.Context, commentID, callerID int64) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to load comment: %w", err)
	}

	if comment.UserID != callerID {
		logger.WarnWithFields("comment delete denied", logger.Fields{
			"comment_id": commentID,
			"caller_id":  callerID,
			"author_id":  comment.UserID,
		})
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		logger.ErrorWithFields("failed to delete comment", logger.Fields{
			"comment_id": commentID,
			"error":      err.Error(),
		})
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	logger.InfoWithFields("comment deleted", logger.Fields{"comment_id": commentID, "post_id": comment.PostID})
	return nil
}

func (s *commentService) requirePost(ctx context.Context, postID int64) error {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to check post: %w", err)
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}
