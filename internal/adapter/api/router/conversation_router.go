package router

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/adapter/api/handler"
	"vendora/internal/adapter/api/middleware"
)

// SetupConversationRouter wires the messaging endpoints. Everything here
// requires an authenticated caller.
func SetupConversationRouter(e *echo.Echo, conversationHandler *handler.ConversationHandler, contactHandler *handler.ContactHandler, authMiddleware *middleware.AuthMiddleware) {
	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)

	conversations.POST("", conversationHandler.CreateConversation)
	conversations.GET("", conversationHandler.GetUserConversations)
	conversations.GET("/unread-count", conversationHandler.GetUnreadCount)
	conversations.GET("/:id", conversationHandler.GetConversationByID)
	conversations.GET("/:id/messages", conversationHandler.GetConversationMessages)
	conversations.POST("/:id/messages", conversationHandler.SendMessage)
	conversations.POST("/:id/read", conversationHandler.MarkAsRead)

	contact := e.Group("/v1/contact")
	contact.Use(authMiddleware.Authenticate)
	contact.POST("", contactHandler.StartContact)
}
