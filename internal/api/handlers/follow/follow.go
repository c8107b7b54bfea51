package follow

import (
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
)

// FollowHandler handles follow and unfollow requests
type FollowHandler struct {
	service follows.Service
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(service follows.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

// HandleFollow handles POST /api/v1/users/{user}/follow
// A public target is followed immediately (201, status accepted); a private
// target receives a pending request.
func (h *FollowHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	targetID, ok := parseID(w, r, "user")
	if !ok {
		return
	}

	follow, err := h.service.Follow(r.Context(), callerID, targetID)
	if err != nil {
		handleServiceError(w, r, "follow", err)
		return
	}

	message := "follow request sent"
	if follow.Status == follows.StatusAccepted {
		message = "user followed"
	}
	handlers.WriteSuccess(w, http.StatusCreated, message, follow)
}

// HandleUnfollow handles DELETE /api/v1/users/{user}/follow
// Also withdraws a pending request.
func (h *FollowHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	targetID, ok := parseID(w, r, "user")
	if !ok {
		return
	}

	if err := h.service.Unfollow(r.Context(), callerID, targetID); err != nil {
		handleServiceError(w, r, "unfollow", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "user unfollowed", nil)
}
