package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Agora/internal/core/users"
)

// SessionName is the cookie holding the logged-in user id
const SessionName = "agora_session"

// LoginHandler handles login requests
type LoginHandler struct {
	service users.UserService
	store   *sessions.CookieStore
}

// NewLoginHandler creates a new login handler. store may be nil, in which
// case login succeeds without establishing a session cookie.
func NewLoginHandler(service users.UserService, store *sessions.CookieStore) *LoginHandler {
	return &LoginHandler{service: service, store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /users/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.store != nil {
		session, _ := h.store.Get(r, SessionName)
		session.Values["userID"] = user.ID
		session.Options.HttpOnly = true
		session.Options.SameSite = http.SameSiteLaxMode
		if err := session.Save(r, w); err != nil {
			// The login itself succeeded; the client just doesn't get a cookie
			log.Printf("Failed to save session for user %d: %v", user.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, user)
}
