package routes

import (
	"Agora/internal/api/handlers/user"
	"Agora/internal/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// RegisterUserRoutes registers account endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.UserService, store *sessions.CookieStore) {
	signupHandler := user.NewSignupHandler(service)
	loginHandler := user.NewLoginHandler(service, store)
	getHandler := user.NewGetHandler(service)
	updateHandler := user.NewUpdateHandler(service)
	deleteHandler := user.NewDeleteHandler(service)

	r.Post("/users/signup", signupHandler.HandleSignup)
	r.Post("/users/login", loginHandler.HandleLogin)
	r.Get("/users/{id}", getHandler.HandleGet)
	r.Get("/users/email/{email}", getHandler.HandleGetByEmail)
	r.Put("/users/{id}", updateHandler.HandleUpdate)
	r.Delete("/users/{id}", deleteHandler.HandleDelete)
}
