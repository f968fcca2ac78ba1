package routes

import (
	"nutriclinic/internal/controllers"
	"nutriclinic/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterClientRoutes(router *gin.Engine, clientController *controllers.ClientController) {
	clientRoutes := router.Group("/clients")
	clientRoutes.Use(middleware.AuthMiddleware())
	{
		clientRoutes.POST("/", clientController.CreateClient)
		clientRoutes.GET("/", clientController.GetClients)
		clientRoutes.GET("/:id", clientController.GetClientByID)
		clientRoutes.PUT("/:id", clientController.UpdateClient)
		clientRoutes.DELETE("/:id", clientController.DeleteClient)
	}
}
