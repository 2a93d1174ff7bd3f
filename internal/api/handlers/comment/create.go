package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/comments"
)

// CreateHandler handles comment creation requests
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /comments
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	h.create(w, r, req)
}

// HandleCreateOnPost handles POST /posts/{postID}/comments, the nested form
// where the post id comes from the path
func (h *CreateHandler) HandleCreateOnPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "postID must be an integer")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	req.PostID = postID

	h.create(w, r, req)
}

func (h *CreateHandler) create(w http.ResponseWriter, r *http.Request, req comments.CreateCommentRequest) {
	comment, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
