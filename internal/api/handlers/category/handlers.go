package category

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Tabloid/internal/core/categories"
)

// Handler serves category CRUD requests
// Category management is an administrative flow separate from posting
type Handler struct {
	service categories.Service
}

// NewHandler creates a new category handler
func NewHandler(service categories.Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /categories
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if all == nil {
		all = []*categories.Category{}
	}

	writeJSON(w, http.StatusOK, all)
}

// HandleGet handles GET /categories/{categoryID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid category id")
		return
	}

	category, err := h.service.GetByID(r.Context(), categoryID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// HandleCreate handles POST /categories
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req categories.CreateCategoryRequest
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

// HandleUpdate handles PUT /categories/{categoryID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid category id")
		return
	}

	var req categories.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	req.ID = categoryID

	updated, err := h.service.Update(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /categories/{categoryID}
// Deleting a category still referenced by posts yields 409.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid category id")
		return
	}

	if err := h.service.Delete(r.Context(), categoryID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
}
