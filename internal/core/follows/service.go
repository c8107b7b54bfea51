package follows

import (
	"context"
	"errors"
	"fmt"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

type followService struct {
	repo  Repository
	users UserGetter
}

// NewFollowService creates a new follow service
func NewFollowService(repo Repository, users UserGetter) Service {
	return &followService{
		repo:  repo,
		users: users,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, targetID int64) (*Follow, error) {
	if followerID == targetID {
		return nil, ErrCannotFollowSelf
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load follow target: %w", err)
	}

	status := StatusPending
	if target.IsPublic {
		status = StatusAccepted
	}

	existing, err := s.repo.GetByPair(ctx, followerID, targetID)
	switch {
	case err == nil && existing.IsActive():
		return nil, ErrAlreadyFollowing
	case err == nil:
		// a rejected edge is re-opened rather than duplicated
		follow, err := s.repo.UpdateStatus(ctx, existing.ID, status)
		if err != nil {
			return nil, fmt.Errorf("failed to re-request follow: %w", err)
		}
		s.logFollow(follow)
		return follow, nil
	case !errors.Is(err, ErrFollowNotFound):
		return nil, fmt.Errorf("failed to check existing follow: %w", err)
	}

	follow := &Follow{
		FollowerID:  followerID,
		FollowingID: targetID,
		Status:      status,
	}
	if err := s.repo.Create(ctx, follow); err != nil {
		if errors.Is(err, ErrAlreadyFollowing) {
			return nil, ErrAlreadyFollowing
		}
		logger.ErrorWithFields("failed to create follow", logger.Fields{
			"follower_id":  followerID,
			"following_id": targetID,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	s.logFollow(follow)
	return follow, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, targetID int64) error {
	existing, err := s.repo.GetByPair(ctx, followerID, targetID)
	if err != nil {
		if errors.Is(err, ErrFollowNotFound) {
			return ErrFollowNotFound
		}
		return fmt.Errorf("failed to load follow: %w", err)
	}

	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, ErrFollowNotFound) {
			return ErrFollowNotFound
		}
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	logger.InfoWithFields("follow removed", logger.Fields{
		"follower_id":  followerID,
		"following_id": targetID,
	})
	return nil
}

func (s *followService) Accept(ctx context.Context, followID, callerID int64) (*Follow, error) {
	return s.answer(ctx, followID, callerID, StatusAccepted)
}

func (s *followService) Reject(ctx context.Context, followID, callerID int64) (*Follow, error) {
	return s.answer(ctx, followID, callerID, StatusRejected)
}

func (s *followService) ListPending(ctx context.Context, userID int64) ([]*Follow, error) {
	list, err := s.repo.ListPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending follows: %w", err)
	}
	if list == nil {
		list = []*Follow{}
	}
	return list, nil
}

func (s *followService) ListAcceptedFollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	ids, err := s.repo.ListAcceptedFollowingIDs(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}
	return ids, nil
}

func (s *followService) answer(ctx context.Context, followID, callerID int64, status Status) (*Follow, error) {
	follow, err := s.repo.GetByID(ctx, followID)
	if err != nil {
		if errors.Is(err, ErrFollowNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, fmt.Errorf("failed to load follow: %w", err)
	}

	if follow.FollowingID != callerID {
		return nil, ErrNotAuthorized
	}
	if follow.Status != StatusPending {
		return nil, ErrNotPending
	}

	updated, err := s.repo.UpdateStatus(ctx, followID, status)
	if err != nil {
		logger.ErrorWithFields("failed to answer follow request", logger.Fields{
			"follow_id": followID,
			"status":    string(status),
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("failed to update follow: %w", err)
	}

	logger.InfoWithFields("follow request answered", logger.Fields{
		"follow_id": followID,
		"status":    string(status),
	})
	return updated, nil
}

func (s *followService) logFollow(f *Follow) {
	logger.InfoWithFields("follow requested", logger.Fields{
		"follow_id":    f.ID,
		"follower_id":  f.FollowerID,
		"following_id": f.FollowingID,
		"status":       string(f.Status),
	})
}
