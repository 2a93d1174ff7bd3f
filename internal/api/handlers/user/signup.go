package user

import (
	"encoding/json"
	"net/http"

	"Agora/internal/core/users"
)

// SignupHandler handles account creation requests
type SignupHandler struct {
	service users.UserService
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(service users.UserService) *SignupHandler {
	return &SignupHandler{service: service}
}

// HandleSignup handles POST /users/signup
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
