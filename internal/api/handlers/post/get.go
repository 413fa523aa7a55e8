package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/posts"
)

// GetHandler serves single-post reads
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /posts/{postID}
// Published posts are visible to anyone; drafts only to their author.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	viewerID := middleware.GetUserID(r)

	post, err := h.service.GetVisible(r.Context(), postID, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// pathID parses a numeric chi URL parameter
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
