package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers/post"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
)

// RegisterPostRoutes registers the post lifecycle endpoints.
// owners resolves post ownership for update and delete.
func RegisterPostRoutes(
	r chi.Router,
	service posts.Service,
	owners middleware.OwnerLookup,
	authMiddleware *middleware.JWTAuthMiddleware,
	maxUploadBytes int64,
) {
	createHandler := post.NewCreateHandler(service, maxUploadBytes)
	updateHandler := post.NewUpdateHandler(service, maxUploadBytes)
	getHandler := post.NewGetHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	listHandler := post.NewListHandler(service)

	requireOwner := middleware.RequireOwner(owners, "id", "post")

	r.Get("/posts", listHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)

	// Static segments first so they never reach the {id} handlers
	r.Get("/posts/public", listHandler.HandlePublicFeed)
	r.Get("/posts/filter", listHandler.HandleFiltered)
	r.With(authMiddleware.RequireAuth).Get("/posts/following", listHandler.HandleFollowingFeed)

	r.Get("/posts/{id}", getHandler.HandleGet)
	r.With(authMiddleware.RequireAuth, requireOwner).Put("/posts/{id}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth, requireOwner).Delete("/posts/{id}", deleteHandler.HandleDelete)
}
