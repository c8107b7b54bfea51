package middleware

import (
	"context"
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// OwnerLookup resolves the owner of a resource by id.
// found is false when the resource doesn't exist.
type OwnerLookup interface {
	OwnerOf(ctx context.Context, id int64) (ownerID int64, found bool, err error)
}

// RequireOwner allows the request through only when the authenticated caller
// owns the resource named by the chi URL parameter param.
// Must run after RequireAuth.
func RequireOwner(lookup OwnerLookup, param, resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID := GetUserID(r)
			if callerID == 0 {
				writeAuthError(w, "authentication required")
				return
			}

			id, err := handlers.ParseIDParam(r, param)
			if err != nil {
				handlers.WriteValidationError(w, handlers.FieldErrors{param: {"must be a positive integer"}})
				return
			}

			ownerID, found, err := lookup.OwnerOf(r.Context(), id)
			if err != nil {
				logger.ErrorWithFields("ownership lookup failed", logger.Fields{
					"resource":  resource,
					"id":        id,
					"caller_id": callerID,
					"error":     err.Error(),
				})
				handlers.WriteInternalError(w, "unexpected error")
				return
			}
			if !found {
				handlers.WriteNotFound(w, resource+" not found")
				return
			}
			if ownerID != callerID {
				logger.WarnWithFields("ownership check denied", logger.Fields{
					"resource":  resource,
					"id":        id,
					"caller_id": callerID,
					"owner_id":  ownerID,
				})
				handlers.WriteError(w, http.StatusForbidden, "you do not own this "+resource, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
