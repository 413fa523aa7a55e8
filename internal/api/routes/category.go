package routes

import (
	"github.com/go-chi/chi/v5"

	"Tabloid/internal/api/handlers/category"
	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/categories"
)

// RegisterCategoryRoutes registers category endpoints on the router
func RegisterCategoryRoutes(r chi.Router, service categories.Service, auth *middleware.AuthMiddleware) {
	handler := category.NewHandler(service)

	r.Get("/categories", handler.HandleList)
	r.Get("/categories/{categoryID}", handler.HandleGet)

	r.With(auth.RequireAuth).Post("/categories", handler.HandleCreate)
	r.With(auth.RequireAuth).Put("/categories/{categoryID}", handler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/categories/{categoryID}", handler.HandleDelete)
}
