package comment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/comments"
)

// GetHandler handles comment listing requests
type GetHandler struct {
	service comments.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service comments.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGetByPost handles GET /comments/post/{postID} and
// GET /posts/{postID}/comments. Comments come back oldest first.
func (h *GetHandler) HandleGetByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "postID must be an integer")
		return
	}

	list, err := h.service.GetCommentsByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}
