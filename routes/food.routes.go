package routes

import (
	"nutriclinic/internal/controllers"
	"nutriclinic/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController) {
	foodRoutes := router.Group("/foods")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.POST("/", foodController.CreateFood)
		foodRoutes.GET("/", foodController.SearchFoods)
		foodRoutes.POST("/validate", foodController.ValidateFood)
		foodRoutes.GET("/:id", foodController.GetFoodByID)
		foodRoutes.PUT("/:id", foodController.UpdateFood)
		foodRoutes.DELETE("/:id", foodController.DeleteFood)
		foodRoutes.GET("/:id/measures", foodController.GetMeasures)
		foodRoutes.POST("/:id/measures", foodController.CreateMeasure)
		foodRoutes.PUT("/:id/measures/:measure_id", foodController.UpdateMeasure)
		foodRoutes.DELETE("/:id/measures/:measure_id", foodController.DeleteMeasure)
	}
}
