package routes

import (
	"github.com/go-chi/chi/v5"

	"Tabloid/internal/api/handlers/post"
	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the router
// Public reads use OptionalAuth so authors get the draft fallback on
// their own posts; everything else requires authentication.
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	tagsHandler := post.NewTagsHandler(service)

	// Public feed and single-post reads
	r.With(auth.OptionalAuth).Get("/posts", listHandler.HandleListPublished)
	r.With(auth.OptionalAuth).Get("/posts/{postID}", getHandler.HandleGet)
	r.With(auth.OptionalAuth).Get("/posts/{postID}/tags", tagsHandler.HandleListTags)

	// Author-scoped reads
	r.With(auth.RequireAuth).Get("/posts/mine", listHandler.HandleListOwned)
	r.With(auth.RequireAuth).Get("/posts/new", createHandler.HandleNewForm)
	r.With(auth.RequireAuth).Get("/posts/{postID}/edit", updateHandler.HandleEditForm)
	r.With(auth.RequireAuth).Get("/posts/{postID}/delete", deleteHandler.HandleConfirmDelete)

	// Mutations
	r.With(auth.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Put("/posts/{postID}", updateHandler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/posts/{postID}", deleteHandler.HandleDelete)
	r.With(auth.RequireAuth).Put("/posts/{postID}/tags/{tagID}", tagsHandler.HandleAttachTag)
	r.With(auth.RequireAuth).Delete("/posts/{postID}/tags/{tagID}", tagsHandler.HandleDetachTag)
}
