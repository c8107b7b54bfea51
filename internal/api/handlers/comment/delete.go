package comment

import (
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
)

// DeleteHandler handles comment deletion requests
type DeleteHandler struct {
	service comments.Service
}

// NewDeleteHandler creates a new handler for deleting comments
func NewDeleteHandler(service comments.Service) *DeleteHandler {
	return &DeleteHandler{
		service: service,
	}
}

// HandleDelete handles DELETE /api/v1/comments/{id}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r)
	if callerID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	commentID, err := handlers.ParseIDParam(r, "id")
	if err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"id": {"must be a positive integer"}})
		return
	}

	if err := h.service.DeleteComment(r.Context(), commentID, callerID); err != nil {
		handleServiceError(w, r, "delete", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "comment deleted", nil)
}
