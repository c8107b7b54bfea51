package follows

import (
	"time"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

// Status is the lifecycle state of a follow request
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Follow is a directed edge: FollowerID follows FollowingID.
// Only accepted follows feed the following timeline.
type Follow struct {
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
	Follower    *users.Summary `json:"follower,omitempty" db:"-"`
	Status      Status         `json:"status" db:"status"`
	ID          int64          `json:"id" db:"id"`
	FollowerID  int64          `json:"follower_id" db:"follower_id"`
	FollowingID int64          `json:"following_id" db:"following_id"`
}

// IsActive reports whether the edge blocks a new request for the same pair
func (f *Follow) IsActive() bool {
	return f.Status == StatusPending || f.Status == StatusAccepted
}
