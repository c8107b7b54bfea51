package post

import (
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
)

// ListHandler serves the post listings and feeds
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/v1/posts
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, r, "list", err)
		return
	}
	handlers.WriteSuccess(w, http.StatusOK, "posts retrieved", list)
}

// HandleFiltered handles GET /api/v1/posts/filter
// Query parameters are passed through as filters (first value per key).
func (h *ListHandler) HandleFiltered(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	list, err := h.service.ListFilteredPosts(r.Context(), filters)
	if err != nil {
		handleServiceError(w, r, "list_filtered", err)
		return
	}
	handlers.WriteSuccess(w, http.StatusOK, "posts retrieved", list)
}

// HandlePublicFeed handles GET /api/v1/posts/public
func (h *ListHandler) HandlePublicFeed(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListPublicFeed(r.Context())
	if err != nil {
		handleServiceError(w, r, "public_feed", err)
		return
	}
	handlers.WriteSuccess(w, http.StatusOK, "public feed retrieved", list)
}

// HandleFollowingFeed handles GET /api/v1/posts/following
func (h *ListHandler) HandleFollowingFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)
	if viewerID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	list, err := h.service.ListFollowingFeed(r.Context(), viewerID)
	if err != nil {
		handleServiceError(w, r, "following_feed", err)
		return
	}
	handlers.WriteSuccess(w, http.StatusOK, "following feed retrieved", list)
}

// HandleByOwner handles GET /api/v1/users/{user}/posts
func (h *ListHandler) HandleByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.ParseIDParam(r, "user")
	if err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"user": {"must be a positive integer"}})
		return
	}

	list, err := h.service.ListUserPosts(r.Context(), ownerID)
	if err != nil {
		handleServiceError(w, r, "list_by_owner", err)
		return
	}
	handlers.WriteSuccess(w, http.StatusOK, "posts retrieved", list)
}
