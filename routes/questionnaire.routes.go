package routes

import (
	"nutriclinic/internal/controllers"
	"nutriclinic/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterQuestionnaireRoutes(router *gin.Engine, questionnaireController *controllers.QuestionnaireController) {
	qRoutes := router.Group("/questionnaires")
	qRoutes.Use(middleware.AuthMiddleware())
	{
		qRoutes.POST("/", questionnaireController.CreateQuestionnaire)
		qRoutes.GET("/", questionnaireController.GetQuestionnaires)
		qRoutes.GET("/:id", questionnaireController.GetQuestionnaireByID)
		qRoutes.PUT("/:id", questionnaireController.UpdateQuestionnaire)
		qRoutes.DELETE("/:id", questionnaireController.DeleteQuestionnaire)
		qRoutes.POST("/:id/send", questionnaireController.SendQuestionnaire)
		qRoutes.POST("/responses/:id", questionnaireController.SubmitResponse)
		qRoutes.GET("/responses/client/:client_id", questionnaireController.GetClientResponses)
	}
}
