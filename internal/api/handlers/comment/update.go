package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/comments"
)

// UpdateHandler handles comment update requests
type UpdateHandler struct {
	service comments.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service comments.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

type updateRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

// HandleUpdate handles PUT /comments/{id}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), id, req.UserID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}
