package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// ProfileHandler serves user profiles and the caller's visibility setting
type ProfileHandler struct {
	service users.UserService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service users.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleMe handles GET /api/v1/users/me
func (h *ProfileHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r)
	if callerID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), callerID)
	if err != nil {
		handleServiceError(w, r, "get_me", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "user retrieved", user)
}

// HandleGet handles GET /api/v1/users/{user}
// Only the public summary is returned for other users.
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseIDParam(r, "user")
	if err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"user": {"must be a positive integer"}})
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, "get", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "user retrieved", user.Summary())
}

// HandleSetVisibility handles PUT /api/v1/users/me/visibility
//
// Request body: { "is_public": true | false }
func (h *ProfileHandler) HandleSetVisibility(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r)
	if callerID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var req users.SetVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"body": {"invalid JSON body"}})
		return
	}
	if req.IsPublic == nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{"is_public": {"is_public is required"}})
		return
	}

	user, err := h.service.SetVisibility(r.Context(), callerID, *req.IsPublic)
	if err != nil {
		handleServiceError(w, r, "set_visibility", err)
		return
	}

	logger.InfoWithFields("user visibility changed", logger.Fields{
		"user_id":   callerID,
		"is_public": user.IsPublic,
	})
	handlers.WriteSuccess(w, http.StatusOK, "visibility updated", user)
}

func handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var valErr *users.ValidationError
	switch {
	case users.IsNotFound(err):
		handlers.WriteNotFound(w, "user not found")
	case errors.As(err, &valErr):
		handlers.WriteValidationError(w, handlers.FieldErrors{valErr.Field: {valErr.Message}})
	default:
		logger.ErrorWithFields("unexpected error in user handler", logger.Fields{
			"op":    op,
			"path":  r.URL.Path,
			"error": err.Error(),
		})
		handlers.WriteInternalError(w, "unexpected error")
	}
}
