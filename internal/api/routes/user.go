package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers/post"
	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers/user"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

// RegisterUserRoutes registers profile endpoints and the per-user post list
func RegisterUserRoutes(
	r chi.Router,
	service users.UserService,
	postService posts.Service,
	authMiddleware *middleware.JWTAuthMiddleware,
) {
	profileHandler := user.NewProfileHandler(service)
	listHandler := post.NewListHandler(postService)

	r.With(authMiddleware.RequireAuth).Get("/users/me", profileHandler.HandleMe)
	r.With(authMiddleware.RequireAuth).Put("/users/me/visibility", profileHandler.HandleSetVisibility)

	r.Get("/users/{user}", profileHandler.HandleGet)
	r.With(authMiddleware.RequireAuth).Get("/users/{user}/posts", listHandler.HandleByOwner)
}
