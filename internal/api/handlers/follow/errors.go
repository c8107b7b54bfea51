package follow

import (
	"errors"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// handleServiceError maps follow service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case follows.IsNotFound(err):
		handlers.WriteNotFound(w, err.Error())

	case follows.IsValidationError(err):
		handlers.WriteValidationError(w, handlers.FieldErrors{"user": {err.Error()}})

	case follows.IsConflict(err):
		handlers.WriteError(w, http.StatusConflict, err.Error(), nil)

	case errors.Is(err, follows.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "only the requested user can answer this follow request", nil)

	default:
		logger.ErrorWithFields("unexpected error in follow handler", logger.Fields{
			"op":     op,
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		handlers.WriteInternalError(w, "unexpected error")
	}
}

func requireCaller(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := middleware.GetUserID(r)
	if id == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return 0, false
	}
	return id, true
}

func parseID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := handlers.ParseIDParam(r, name)
	if err != nil {
		handlers.WriteValidationError(w, handlers.FieldErrors{name: {"must be a positive integer"}})
		return 0, false
	}
	return id, true
}
