package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/auth"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// Context keys for storing user information
type contextKey string

const (
	UserIDKey contextKey = "user_id"
)

// JWTAuthMiddleware enforces bearer-token authentication for protected routes
type JWTAuthMiddleware struct {
	secret []byte
}

// NewJWTAuthMiddleware creates a new auth middleware verifying HS256 tokens with secret
func NewJWTAuthMiddleware(secret []byte) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{secret: secret}
}

// RequireAuth middleware ensures the user is authenticated with a valid JWT
// If not authenticated, returns 401
// If authenticated, injects the user id into context
func (m *JWTAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "invalid authorization header format, expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := auth.ParseToken(m.secret, token)
		if err != nil {
			logger.WarnWithFields("auth failure", logger.Fields{
				"ip":     r.RemoteAddr,
				"method": r.Method,
				"path":   r.URL.Path,
				"error":  err.Error(),
			})
			writeAuthError(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the caller's user id from the request context
// Returns 0 if not authenticated
func GetUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(UserIDKey).(int64)
	return id
}

// SetTestUserID sets the user id in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// writeAuthError writes the failure envelope for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	handlers.WriteError(w, http.StatusUnauthorized, message, nil)
}
