package routes

import (
	"Agora/internal/api/handlers/comment"
	"Agora/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints on the router
func RegisterCommentRoutes(r chi.Router, service comments.Service) {
	createHandler := comment.NewCreateHandler(service)
	getHandler := comment.NewGetHandler(service)
	updateHandler := comment.NewUpdateHandler(service)
	deleteHandler := comment.NewDeleteHandler(service)

	r.Post("/comments", createHandler.HandleCreate)
	r.Get("/comments/post/{postID}", getHandler.HandleGetByPost)
	r.Put("/comments/{id}", updateHandler.HandleUpdate)
	r.Delete("/comments/{id}", deleteHandler.HandleDelete)
}
