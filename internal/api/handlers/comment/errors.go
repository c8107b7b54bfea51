package comment

import (
	"errors"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, comments.ErrPostNotFound):
		handlers.WriteNotFound(w, "post not found")

	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteNotFound(w, "comment not found")

	case comments.IsValidationError(err):
		handlers.WriteValidationError(w, handlers.FieldErrors{"content": {err.Error()}})

	case errors.Is(err, comments.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "only the author can delete this comment", nil)

	default:
		// Don't leak internal error details to clients
		logger.ErrorWithFields("unexpected error in comment handler", logger.Fields{
			"op":     op,
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		handlers.WriteInternalError(w, "unexpected error")
	}
}
