package routes

import (
	"nutriclinic/internal/controllers"
	"nutriclinic/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMessageRoutes(router *gin.Engine, messageController *controllers.MessageController) {
	msgRoutes := router.Group("/messages")
	msgRoutes.Use(middleware.AuthMiddleware())
	{
		msgRoutes.POST("/client/:client_id", messageController.SendMessage)
		msgRoutes.GET("/client/:client_id", messageController.GetConversation)
		msgRoutes.GET("/client/:client_id/unread", messageController.GetUnreadCount)
	}
}
