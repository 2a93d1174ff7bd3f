package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/users"
)

// UpdateHandler handles profile update requests
type UpdateHandler struct {
	service users.UserService
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service users.UserService) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate handles PUT /users/{id}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input users.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
