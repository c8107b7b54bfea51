package post

import (
	"errors"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// handleServiceError maps service errors to HTTP responses.
// The cause is logged; clients only see a fixed message.
func handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	fields := logger.Fields{
		"op":     op,
		"method": r.Method,
		"path":   r.URL.Path,
		"error":  err.Error(),
	}

	var valErr *posts.ValidationError
	switch {
	case errors.As(err, &valErr):
		logger.WarnWithFields("post request rejected", fields)
		handlers.WriteValidationError(w, handlers.FieldErrors{valErr.Field: {valErr.Message}})

	case posts.IsNotFound(err):
		logger.WarnWithFields("post not found", fields)
		handlers.WriteNotFound(w, "post not found")

	case posts.IsImageUploadFailed(err):
		logger.ErrorWithFields("post image upload failed", fields)
		handlers.WriteInternalError(w, "image upload failed")

	case posts.IsPersistenceFailed(err):
		logger.ErrorWithFields("post persistence failed", fields)
		handlers.WriteInternalError(w, "could not complete the request")

	default:
		// Don't leak internal error details to clients
		logger.ErrorWithFields("unexpected error in post handler", fields)
		handlers.WriteInternalError(w, "unexpected error")
	}
}

func writeInvalidID(w http.ResponseWriter) {
	handlers.WriteValidationError(w, handlers.FieldErrors{"id": {"must be a positive integer"}})
}
