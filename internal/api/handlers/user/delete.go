package user

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/users"
)

// DeleteHandler handles account deletion requests
type DeleteHandler struct {
	service users.UserService
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service users.UserService) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles DELETE /users/{id}. Deletion cascades: the user's
// messages, comments, likes, and posts (with their comments and likes) go
// with the account.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
