package user

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/users"
)

// GetHandler handles user lookup requests
type GetHandler struct {
	service users.UserService
}

// NewGetHandler creates a new get handler
func NewGetHandler(service users.UserService) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /users/{id}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleGetByEmail handles GET /users/email/{email}
func (h *GetHandler) HandleGetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.service.GetUserByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
