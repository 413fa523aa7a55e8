package post

import (
	"net/http"

	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/posts"
)

// ListHandler serves the public feed and the author's own post list
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleListPublished handles GET /posts
// Returns every published post paired with the viewer id (0 if anonymous)
// so clients can decide which posts to offer edit/delete controls for.
func (h *ListHandler) HandleListPublished(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)

	feed, err := h.service.ListPublished(r.Context(), viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

// HandleListOwned handles GET /posts/mine
// Returns every post owned by the authenticated user, drafts included.
func (h *ListHandler) HandleListOwned(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r)
	if ownerID == 0 {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	owned, err := h.service.ListOwned(r.Context(), ownerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, owned)
}
