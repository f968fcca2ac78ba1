package routes

import (
	"nutriclinic/internal/controllers"
	"nutriclinic/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterLeadRoutes(router *gin.Engine, leadController *controllers.LeadController) {
	leadRoutes := router.Group("/leads")
	leadRoutes.Use(middleware.AuthMiddleware())
	{
		leadRoutes.POST("/", leadController.CreateLead)
		leadRoutes.GET("/", leadController.GetLeads)
		leadRoutes.PUT("/:id", leadController.UpdateLead)
		leadRoutes.PATCH("/:id/status", leadController.UpdateLeadStatus)
		leadRoutes.DELETE("/:id", leadController.DeleteLead)
	}
}
