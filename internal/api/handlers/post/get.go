package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/posts"
)

// GetHandler handles post read requests
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /posts/{id}. Reading a post counts a view: the
// response always reflects the incremented count.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// HandleGetAll handles GET /posts
func (h *GetHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAllPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleGetByUser handles GET /posts/user/{userID}
func (h *GetHandler) HandleGetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "userID must be an integer")
		return
	}

	list, err := h.service.GetUserPosts(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}
