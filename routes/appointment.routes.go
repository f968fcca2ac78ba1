package routes

import (
	"nutriclinic/internal/controllers"
	"nutriclinic/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAppointmentRoutes(router *gin.Engine, appointmentController *controllers.AppointmentController) {
	apptRoutes := router.Group("/appointments")
	apptRoutes.Use(middleware.AuthMiddleware())
	{
		apptRoutes.POST("/", appointmentController.CreateAppointment)
		apptRoutes.GET("/", appointmentController.GetAppointments)
		apptRoutes.GET("/client/:client_id", appointmentController.GetAppointmentsByClient)
		apptRoutes.PUT("/:id", appointmentController.UpdateAppointment)
		apptRoutes.DELETE("/:id", appointmentController.DeleteAppointment)
	}
}
