package comment

import (
	"encoding/json"
	"log"
	"net/http"

	"Agora/internal/core/comments"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == comments.ErrCommentNotFound:
		writeError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")

	case err == comments.ErrPostNotFound:
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case err == comments.ErrAuthorNotFound:
		writeError(w, http.StatusNotFound, "UserNotFound", "User not found")

	case err == comments.ErrNotCommentAuthor:
		writeError(w, http.StatusForbidden, "NotAuthorized",
			"You are not the author of this comment")

	case comments.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in comment handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
