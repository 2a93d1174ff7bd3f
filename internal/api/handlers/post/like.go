package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/posts"
)

// LikeHandler handles like toggle requests
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

type likeRequest struct {
	UserID int64 `json:"userId"`
}

// HandleToggleLike handles PUT /posts/{id}/like. The acting user comes from
// the userId query parameter, or from the JSON body when the parameter is
// absent. Toggling twice returns the like count to where it started.
func (h *LikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be an integer")
		return
	}

	var userID int64
	if q := r.URL.Query().Get("userId"); q != "" {
		userID, err = strconv.ParseInt(q, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "userId must be an integer")
			return
		}
	} else {
		var req likeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
			return
		}
		userID = req.UserID
	}

	result, err := h.service.ToggleLike(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
