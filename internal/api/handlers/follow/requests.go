package follow

import (
	"context"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
)

// RequestsHandler lets a user answer incoming follow requests
type RequestsHandler struct {
	service follows.Service
}

// NewRequestsHandler creates a new follow requests handler
func NewRequestsHandler(service follows.Service) *RequestsHandler {
	return &RequestsHandler{service: service}
}

// HandlePending handles GET /api/v1/follows/pending
func (h *RequestsHandler) HandlePending(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	pending, err := h.service.ListPending(r.Context(), callerID)
	if err != nil {
		handleServiceError(w, r, "list_pending", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "pending follow requests retrieved", pending)
}

// HandleAccept handles POST /api/v1/follows/{id}/accept
func (h *RequestsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, "accept", h.service.Accept, "follow request accepted")
}

// HandleReject handles POST /api/v1/follows/{id}/reject
func (h *RequestsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, "reject", h.service.Reject, "follow request rejected")
}

func (h *RequestsHandler) answer(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, followID, callerID int64) (*follows.Follow, error),
	message string,
) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	followID, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	follow, err := fn(r.Context(), followID, callerID)
	if err != nil {
		handleServiceError(w, r, op, err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, message, follow)
}
