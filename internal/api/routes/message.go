package routes

import (
	"Agora/internal/api/handlers/message"
	"Agora/internal/core/messages"

	"github.com/go-chi/chi/v5"
)

// RegisterMessageRoutes registers private-message endpoints on the router
func RegisterMessageRoutes(r chi.Router, service messages.Service) {
	sendHandler := message.NewSendHandler(service)
	getHandler := message.NewGetHandler(service)
	deleteHandler := message.NewDeleteHandler(service)

	r.Post("/messages", sendHandler.HandleSend)
	r.Get("/messages/received/{userID}", getHandler.HandleGetReceived)
	r.Get("/messages/sent/{userID}", getHandler.HandleGetSent)
	r.Delete("/messages/{id}", deleteHandler.HandleDelete)
}
