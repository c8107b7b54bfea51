package post

import (
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{
		service: service,
	}
}

// HandleDelete handles DELETE /api/v1/posts/{id}
// Ownership is checked by middleware before this runs.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.ParseIDParam(r, "id")
	if err != nil {
		writeInvalidID(w)
		return
	}

	if err := h.service.DeletePost(r.Context(), postID); err != nil {
		handleServiceError(w, r, "delete", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "post deleted", nil)
}
