package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
	"nutriclinic/internal/utils"
)

type QuestionnaireController struct {
	repo    repository.QuestionnaireRepository
	jobRepo repository.NotificationJobRepository
}

func NewQuestionnaireController(repo repository.QuestionnaireRepository, jobRepo repository.NotificationJobRepository) *QuestionnaireController {
	return &QuestionnaireController{repo: repo, jobRepo: jobRepo}
}

// CreateQuestionnaire godoc
// @Summary Create a questionnaire template
// @Description Create a reusable form template for the clinic
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param questionnaire body models.Questionnaire true "Questionnaire data"
// @Success 201 {object} map[string]interface{} "Questionnaire created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create questionnaire"
// @Router /questionnaires [post]
func (qc *QuestionnaireController) CreateQuestionnaire(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var q models.Questionnaire
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if q.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Questionnaire title is required",
			"error":   "Title must not be empty",
		})
		return
	}

	q.ID = 0
	q.TenantID = tenantID

	if err := qc.repo.Create(&q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create questionnaire",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Questionnaire created successfully",
		"data":    q,
	})
}

// GetQuestionnaires godoc
// @Summary List questionnaires
// @Description Retrieve the clinic's questionnaire templates
// @Tags questionnaire
// @Produce json
// @Success 200 {object} map[string]interface{} "Questionnaires retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve questionnaires"
// @Router /questionnaires [get]
func (qc *QuestionnaireController) GetQuestionnaires(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	qs, err := qc.repo.FindAll(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve questionnaires",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Questionnaires retrieved successfully",
		"data":    qs,
	})
}

// GetQuestionnaireByID godoc
// @Summary Get a questionnaire
// @Description Retrieve one questionnaire template
// @Tags questionnaire
// @Produce json
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} map[string]interface{} "Questionnaire retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid questionnaire ID"
// @Failure 404 {object} map[string]interface{} "Questionnaire not found"
// @Router /questionnaires/{id} [get]
func (qc *QuestionnaireController) GetQuestionnaireByID(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid questionnaire ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	q, err := qc.repo.FindByID(tenantID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Questionnaire not found",
			"error":   "No questionnaire exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Questionnaire retrieved successfully",
		"data":    q,
	})
}

// UpdateQuestionnaire godoc
// @Summary Update a questionnaire
// @Description Update a questionnaire template
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param id path int true "Questionnaire ID"
// @Param questionnaire body models.Questionnaire true "Questionnaire data"
// @Success 200 {object} map[string]interface{} "Questionnaire updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Questionnaire not found"
// @Router /questionnaires/{id} [put]
func (qc *QuestionnaireController) UpdateQuestionnaire(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid questionnaire ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := qc.repo.FindByID(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Questionnaire not found",
			"error":   "No questionnaire exists with the provided ID",
		})
		return
	}

	var q models.Questionnaire
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	q.ID = uint(id)
	q.TenantID = tenantID

	if err := qc.repo.Update(&q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update questionnaire",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Questionnaire updated successfully",
		"data":    q,
	})
}

// DeleteQuestionnaire godoc
// @Summary Delete a questionnaire
// @Description Delete a questionnaire template
// @Tags questionnaire
// @Produce json
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} map[string]interface{} "Questionnaire deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid questionnaire ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete questionnaire"
// @Router /questionnaires/{id} [delete]
func (qc *QuestionnaireController) DeleteQuestionnaire(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid questionnaire ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := qc.repo.Delete(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete questionnaire",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Questionnaire deleted successfully",
		"data":    nil,
	})
}

type sendQuestionnaireRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
}

// SendQuestionnaire godoc
// @Summary Send a questionnaire to a client
// @Description Create a pending response for the client and queue a notification
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param id path int true "Questionnaire ID"
// @Param request body sendQuestionnaireRequest true "Target client"
// @Success 201 {object} map[string]interface{} "Questionnaire sent successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Questionnaire not found"
// @Router /questionnaires/{id}/send [post]
func (qc *QuestionnaireController) SendQuestionnaire(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid questionnaire ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	q, err := qc.repo.FindByID(tenantID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Questionnaire not found",
			"error":   "No questionnaire exists with the provided ID",
		})
		return
	}

	var req sendQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resp := models.QuestionnaireResponse{
		TenantID:        tenantID,
		QuestionnaireID: q.ID,
		ClientID:        req.ClientID,
		Status:          models.ResponseStatusPending,
	}

	if err := qc.repo.CreateResponse(&resp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send questionnaire",
			"error":   err.Error(),
		})
		return
	}

	utils.EnqueueNotification(qc.jobRepo, tenantID, "questionnaire.sent", gin.H{
		"response_id":      resp.ID,
		"questionnaire_id": q.ID,
		"client_id":        req.ClientID,
		"title":            q.Title,
	})

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Questionnaire sent successfully",
		"data":    resp,
	})
}

type submitResponseRequest struct {
	Answers string `json:"answers" binding:"required"`
}

// SubmitResponse godoc
// @Summary Submit questionnaire answers
// @Description Record a client's answers and mark the response submitted
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param id path int true "Response ID"
// @Param answers body submitResponseRequest true "Answers JSON"
// @Success 200 {object} map[string]interface{} "Response submitted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Response not found"
// @Router /questionnaires/responses/{id} [post]
func (qc *QuestionnaireController) SubmitResponse(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid response ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := qc.repo.FindResponseByID(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Response not found",
			"error":   "No response exists with the provided ID",
		})
		return
	}

	var req submitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := qc.repo.SubmitResponse(tenantID, uint(id), req.Answers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to submit response",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Response submitted successfully",
		"data":    nil,
	})
}

// GetClientResponses godoc
// @Summary List a client's questionnaire responses
// @Description Retrieve every response recorded for one client
// @Tags questionnaire
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Responses retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve responses"
// @Router /questionnaires/responses/client/{client_id} [get]
func (qc *QuestionnaireController) GetClientResponses(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid client ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	resps, err := qc.repo.FindResponsesByClientID(tenantID, uint(clientID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve responses",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Responses retrieved successfully",
		"data":    resps,
	})
}
