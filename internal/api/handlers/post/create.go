package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleNewForm handles GET /posts/new
// Returns a blank creation form with the current category options.
func (h *CreateHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.NewPostForm(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// invalidFormResponse echoes the submitted fields alongside fresh category
// options so the client can redisplay the form without losing input.
type invalidFormResponse struct {
	errorResponse
	Fields posts.CreatePostRequest `json:"fields"`
	Form   *posts.CreatePostForm   `json:"form,omitempty"`
}

// HandleCreate handles POST /posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Cap request body size; content limit is 100k characters
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// Reject client-provided authorId: the owner always comes from the
	// authenticated identity
	if req.AuthorID != 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"authorId must not be provided - derived from authenticated user")
		return
	}

	created, err := h.service.Create(r.Context(), req, userID)
	if err != nil {
		if posts.IsValidationError(err) {
			h.writeInvalidForm(w, r, req, err)
			return
		}
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// writeInvalidForm responds 400 with the user's input and re-fetched
// category options intact
func (h *CreateHandler) writeInvalidForm(w http.ResponseWriter, r *http.Request, req posts.CreatePostRequest, cause error) {
	resp := invalidFormResponse{
		errorResponse: errorResponse{Error: "InvalidRequest", Message: cause.Error()},
		Fields:        req,
	}

	// Best effort: the form should still render if options can't be loaded
	form, err := h.service.NewPostForm(r.Context())
	if err != nil {
		log.Printf("Failed to reload category options for form redisplay: %v", err)
	} else {
		resp.Form = form
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode form redisplay response: %v", err)
	}
}
