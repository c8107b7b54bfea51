package comment

import (
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
)

// ListHandler lists the comments of a post
type ListHandler struct {
	service comments.Service
}

// NewListHandler creates a new list comments handler
func NewListHandler(service comments.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/v1/posts/{id}/comments
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.ParseIDParam(r, "id")
	if err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"id": {"must be a positive integer"}})
		return
	}

	list, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, r, "list", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "comments retrieved", list)
}
