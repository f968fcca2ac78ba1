package routes

import (
	"nutriclinic/internal/controllers"
	"nutriclinic/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealPlanRoutes(router *gin.Engine, mealPlanController *controllers.MealPlanController) {
	planRoutes := router.Group("/mealplans")
	planRoutes.Use(middleware.AuthMiddleware())
	{
		planRoutes.POST("/", mealPlanController.CreateMealPlan)
		planRoutes.POST("/calculate", mealPlanController.CalculatePlan)
		planRoutes.GET("/:id", mealPlanController.GetMealPlanByID)
		planRoutes.GET("/client/:client_id", mealPlanController.GetMealPlansByClient)
		planRoutes.PUT("/:id", mealPlanController.UpdateMealPlan)
		planRoutes.PATCH("/:id/status", mealPlanController.UpdateMealPlanStatus)
		planRoutes.DELETE("/:id", mealPlanController.DeleteMealPlan)
	}
}
