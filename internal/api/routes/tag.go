package routes

import (
	"github.com/go-chi/chi/v5"

	"Tabloid/internal/api/handlers/tag"
	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/tags"
)

// RegisterTagRoutes registers tag endpoints on the router
func RegisterTagRoutes(r chi.Router, service tags.Service, auth *middleware.AuthMiddleware) {
	handler := tag.NewHandler(service)

	r.Get("/tags", handler.HandleList)
	r.Get("/tags/{tagID}", handler.HandleGet)

	r.With(auth.RequireAuth).Post("/tags", handler.HandleCreate)
	r.With(auth.RequireAuth).Put("/tags/{tagID}", handler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/tags/{tagID}", handler.HandleDelete)
}
