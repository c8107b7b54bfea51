package comment

import (
	"encoding/json"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
)

// maxCommentBody limits request bodies; content itself is capped by the service
const maxCommentBody = 100 * 1024

// CreateHandler handles comment creation
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new create comment handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/v1/posts/{id}/comments
//
// Request body: { "content": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	authorID := middleware.GetUserID(r)
	if authorID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	postID, err := handlers.ParseIDParam(r, "id")
	if err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"id": {"must be a positive integer"}})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCommentBody)

	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"body": {"invalid JSON body"}})
		return
	}

	comment, err := h.service.AddComment(r.Context(), postID, authorID, req)
	if err != nil {
		handleServiceError(w, r, "create", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusCreated, "comment created", comment)
}
