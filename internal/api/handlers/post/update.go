package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/posts"
)

// UpdateHandler handles post update requests
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

type updateRequest struct {
	UserID  int64   `json:"userId"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// HandleUpdate handles PUT /posts/{id}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	input := posts.UpdatePostInput{Title: req.Title, Content: req.Content}
	post, err := h.service.UpdatePost(r.Context(), id, req.UserID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}
