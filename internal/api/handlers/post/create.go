package post

import (
	"encoding/json"
	"net/http"

	"Agora/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// 1MB allows for long-form content while preventing abuse
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}
