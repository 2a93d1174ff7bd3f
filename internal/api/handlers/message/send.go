package message

import (
	"encoding/json"
	"net/http"

	"Agora/internal/core/messages"
)

// SendHandler handles message send requests
type SendHandler struct {
	service messages.Service
}

// NewSendHandler creates a new send handler
func NewSendHandler(service messages.Service) *SendHandler {
	return &SendHandler{service: service}
}

// HandleSend handles POST /messages
func (h *SendHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req messages.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	view, err := h.service.SendMessage(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}
