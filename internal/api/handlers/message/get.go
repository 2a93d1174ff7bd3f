package message

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/messages"
)

// GetHandler handles message listing requests
type GetHandler struct {
	service messages.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service messages.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGetReceived handles GET /messages/received/{userID}
func (h *GetHandler) HandleGetReceived(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "userID must be an integer")
		return
	}

	list, err := h.service.GetReceived(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleGetSent handles GET /messages/sent/{userID}
func (h *GetHandler) HandleGetSent(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "userID must be an integer")
		return
	}

	list, err := h.service.GetSent(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}
