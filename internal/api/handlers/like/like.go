package like

import (
	"errors"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/likes"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// LikeHandler handles liking and unliking posts
type LikeHandler struct {
	service likes.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service likes.Service) *LikeHandler {
	return &LikeHandler{
		service: service,
	}
}

// HandleLike handles POST /api/v1/posts/{id}/like
// Liking an already liked post is a no-op and still returns 200.
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := parseRequest(w, r)
	if !ok {
		return
	}

	status, err := h.service.Like(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, "like", userID, postID, err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "post liked", status)
}

// HandleUnlike handles DELETE /api/v1/posts/{id}/like
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := parseRequest(w, r)
	if !ok {
		return
	}

	status, err := h.service.Unlike(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, "unlike", userID, postID, err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "post unliked", status)
}

func parseRequest(w http.ResponseWriter, r *http.Request) (userID, postID int64, ok bool) {
	userID = middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return 0, 0, false
	}

	postID, err := handlers.ParseIDParam(r, "id")
	if err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"id": {"must be a positive integer"}})
		return 0, 0, false
	}
	return userID, postID, true
}

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, op string, userID, postID int64, err error) {
	if errors.Is(err, likes.ErrPostNotFound) {
		handlers.WriteNotFound(w, "post not found")
		return
	}

	logger.ErrorWithFields("like request failed", logger.Fields{
		"op":      op,
		"user_id": userID,
		"post_id": postID,
		"error":   err.Error(),
	})
	handlers.WriteInternalError(w, "unexpected error")
}
