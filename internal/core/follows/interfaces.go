package follows

import (
	"context"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

// Repository defines the data access interface for follows
type Repository interface {
	// Create inserts a follow edge and fills in ID and timestamps.
	// Returns ErrAlreadyFollowing on a duplicate (follower, following) pair.
	Create(ctx context.Context, follow *Follow) error

	GetByID(ctx context.Context, id int64) (*Follow, error)

	// GetByPair returns ErrFollowNotFound when no edge exists
	GetByPair(ctx context.Context, followerID, followingID int64) (*Follow, error)

	UpdateStatus(ctx context.Context, id int64, status Status) (*Follow, error)

	Delete(ctx context.Context, id int64) error

	// ListAcceptedFollowingIDs returns the ids followerID follows with accepted status
	ListAcceptedFollowingIDs(ctx context.Context, followerID int64) ([]int64, error)

	// ListPending returns pending requests targeting userID, oldest first,
	// with the requesting user hydrated
	ListPending(ctx context.Context, userID int64) ([]*Follow, error)
}

// UserGetter resolves the follow target so its visibility can be checked
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

// Service defines the business logic interface for follows
type Service interface {
	// Follow creates a request. Public targets are accepted immediately,
	// private targets start pending. A rejected edge can be requested again.
	Follow(ctx context.Context, followerID, targetID int64) (*Follow, error)

	Unfollow(ctx context.Context, followerID, targetID int64) error

	// Accept and Reject may only be called by the target of a pending request
	Accept(ctx context.Context, followID, callerID int64) (*Follow, error)
	Reject(ctx context.Context, followID, callerID int64) (*Follow, error)

	ListPending(ctx context.Context, userID int64) ([]*Follow, error)

	ListAcceptedFollowingIDs(ctx context.Context, followerID int64) ([]int64, error)
}
