package post

import (
	"net/http"

	"Tabloid/internal/api/middleware"
	"Tabloid/internal/core/posts"
)

// TagsHandler manages the tags attached to a post
type TagsHandler struct {
	service posts.Service
}

// NewTagsHandler creates a new tags handler
func NewTagsHandler(service posts.Service) *TagsHandler {
	return &TagsHandler{service: service}
}

// HandleListTags handles GET /posts/{postID}/tags
// Visible under the same rules as the post itself.
func (h *TagsHandler) HandleListTags(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	viewerID := middleware.GetUserID(r)

	attached, err := h.service.ListTags(r.Context(), postID, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, attached)
}

// HandleAttachTag handles PUT /posts/{postID}/tags/{tagID}
// Only the post's owner can change its tags.
func (h *TagsHandler) HandleAttachTag(w http.ResponseWriter, r *http.Request) {
	postID, tagID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	actorID := middleware.GetUserID(r)

	if err := h.service.AttachTag(r.Context(), postID, tagID, actorID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDetachTag handles DELETE /posts/{postID}/tags/{tagID}
func (h *TagsHandler) HandleDetachTag(w http.ResponseWriter, r *http.Request) {
	postID, tagID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	actorID := middleware.GetUserID(r)

	if err := h.service.DetachTag(r.Context(), postID, tagID, actorID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TagsHandler) pathIDs(w http.ResponseWriter, r *http.Request) (postID, tagID int64, ok bool) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return 0, 0, false
	}
	tagID, err = pathID(r, "tagID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid tag id")
		return 0, 0, false
	}
	return postID, tagID, true
}
