package post

import (
	"net/http"

	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleConfirmDelete handles GET /posts/{postID}/delete
// Loads the post for the delete confirmation; same gating as the edit form.
func (h *DeleteHandler) HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	ownerID := middleware.GetUserID(r)

	post, err := h.service.GetOwnedForDelete(r.Context(), postID, ownerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// HandleDelete handles DELETE /posts/{postID}
// Ownership is re-verified by the service at the point of delete.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	actorID := middleware.GetUserID(r)

	if err := h.service.Delete(r.Context(), postID, actorID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
