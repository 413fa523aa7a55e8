package post

import (
	"encoding/json"
	"net/http"

	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/posts"
)

// UpdateHandler handles post edit requests
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleEditForm handles GET /posts/{postID}/edit
// Loads the post for editing; owner-gated, foreign posts look absent.
func (h *UpdateHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	ownerID := middleware.GetUserID(r)

	post, err := h.service.GetOwnedForEdit(r.Context(), postID, ownerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// HandleUpdate handles PUT /posts/{postID}
// Ownership is re-verified by the service at the point of write.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// The path, not the body, names the target
	req.ID = postID

	actorID := middleware.GetUserID(r)

	updated, err := h.service.Update(r.Context(), req, actorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
