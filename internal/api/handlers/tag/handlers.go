package tag

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Tabloid/internal/core/tags"
)

// Handler serves tag CRUD requests
type Handler struct {
	service tags.Service
}

// NewHandler creates a new tag handler
func NewHandler(service tags.Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /tags
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if all == nil {
		all = []*tags.Tag{}
	}

	writeJSON(w, http.StatusOK, all)
}

// HandleGet handles GET /tags/{tagID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid tag id")
		return
	}

	tag, err := h.service.GetByID(r.Context(), tagID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

// HandleCreate handles POST /tags
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tags.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /tags/{tagID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid tag id")
		return
	}

	var req tags.UpdateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	req.ID = tagID

	updated, err := h.service.Update(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /tags/{tagID}
// A tag still attached to posts yields 409 with a specific message so the
// client can tell "in use" apart from a generic failure.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid tag id")
		return
	}

	if err := h.service.Delete(r.Context(), tagID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "tagID"), 10, 64)
}
