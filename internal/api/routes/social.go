package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers/comment"
	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers/follow"
	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers/like"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
	"github.com/naatiworlds/Recetagrm-api/internal/core/likes"
)

// RegisterLikeRoutes registers like/unlike on posts
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	likeHandler := like.NewLikeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/posts/{id}/like", likeHandler.HandleLike)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{id}/like", likeHandler.HandleUnlike)
}

// RegisterCommentRoutes registers comment endpoints.
// Author checks for deletion happen in the comment service.
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	createHandler := comment.NewCreateHandler(service)
	listHandler := comment.NewListHandler(service)
	deleteHandler := comment.NewDeleteHandler(service)

	r.Get("/posts/{id}/comments", listHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Post("/posts/{id}/comments", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Delete("/comments/{id}", deleteHandler.HandleDelete)
}

// RegisterFollowRoutes registers follow requests and their answers
func RegisterFollowRoutes(r chi.Router, service follows.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	followHandler := follow.NewFollowHandler(service)
	requestsHandler := follow.NewRequestsHandler(service)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Post("/users/{user}/follow", followHandler.HandleFollow)
		r.Delete("/users/{user}/follow", followHandler.HandleUnfollow)

		r.Get("/follows/pending", requestsHandler.HandlePending)
		r.Post("/follows/{id}/accept", requestsHandler.HandleAccept)
		r.Post("/follows/{id}/reject", requestsHandler.HandleReject)
	})
}
