package message

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/messages"
)

// DeleteHandler handles message deletion requests
type DeleteHandler struct {
	service messages.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service messages.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

type deleteRequest struct {
	UserID int64 `json:"userId"`
}

// HandleDelete handles DELETE /messages/{id}. Either participant may delete.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.service.DeleteMessage(r.Context(), id, req.UserID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
