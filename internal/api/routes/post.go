package routes

import (
	"Agora/internal/api/handlers/comment"
	"Agora/internal/api/handlers/post"
	"Agora/internal/core/comments"
	"Agora/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router, including the
// nested comment endpoints that address comments through their post.
func RegisterPostRoutes(r chi.Router, postService posts.Service, commentService comments.Service) {
	createHandler := post.NewCreateHandler(postService)
	getHandler := post.NewGetHandler(postService)
	updateHandler := post.NewUpdateHandler(postService)
	deleteHandler := post.NewDeleteHandler(postService)
	likeHandler := post.NewLikeHandler(postService)

	commentCreateHandler := comment.NewCreateHandler(commentService)
	commentGetHandler := comment.NewGetHandler(commentService)

	r.Post("/posts", createHandler.HandleCreate)
	r.Get("/posts", getHandler.HandleGetAll)
	r.Get("/posts/{id}", getHandler.HandleGet)
	r.Get("/posts/user/{userID}", getHandler.HandleGetByUser)
	r.Put("/posts/{id}", updateHandler.HandleUpdate)
	r.Delete("/posts/{id}", deleteHandler.HandleDelete)
	r.Put("/posts/{id}/like", likeHandler.HandleToggleLike)

	r.Get("/posts/{postID}/comments", commentGetHandler.HandleGetByPost)
	r.Post("/posts/{postID}/comments", commentCreateHandler.HandleCreateOnPost)
}
