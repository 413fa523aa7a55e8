package category

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Tabloid/internal/core/categories"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// handleServiceError maps category service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case categories.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Category not found")

	case errors.Is(err, categories.ErrCategoryInUse):
		writeError(w, http.StatusConflict, "CategoryInUse",
			"Category is referenced by one or more posts and cannot be deleted")

	case errors.Is(err, categories.ErrCategoryNameTaken):
		writeError(w, http.StatusConflict, "NameTaken", "A category with this name already exists")

	case categories.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in category handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
