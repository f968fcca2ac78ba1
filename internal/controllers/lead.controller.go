package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
)

type LeadController struct {
	repo repository.LeadRepository
}

func NewLeadController(repo repository.LeadRepository) *LeadController {
	return &LeadController{repo: repo}
}

// CreateLead godoc
// @Summary Create a lead
// @Description Record a new prospect for the clinic
// @Tags lead
// @Accept json
// @Produce json
// @Param lead body models.Lead true "Lead data"
// @Success 201 {object} map[string]interface{} "Lead created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create lead"
// @Router /leads [post]
func (lc *LeadController) CreateLead(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if lead.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Lead name is required",
			"error":   "Name must not be empty",
		})
		return
	}

	lead.ID = 0
	lead.TenantID = tenantID
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}

	if err := lc.repo.Create(&lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create lead",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Lead created successfully",
		"data":    lead,
	})
}

// GetLeads godoc
// @Summary List leads
// @Description Retrieve the clinic's leads, optionally filtered by status
// @Tags lead
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{} "Leads retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve leads"
// @Router /leads [get]
func (lc *LeadController) GetLeads(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	leads, err := lc.repo.FindAll(tenantID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve leads",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leads retrieved successfully",
		"data":    leads,
	})
}

// UpdateLead godoc
// @Summary Update a lead
// @Description Update a lead record
// @Tags lead
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param lead body models.Lead true "Lead data"
// @Success 200 {object} map[string]interface{} "Lead updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Router /leads/{id} [put]
func (lc *LeadController) UpdateLead(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid lead ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := lc.repo.FindByID(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Lead not found",
			"error":   "No lead exists with the provided ID",
		})
		return
	}

	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	lead.ID = uint(id)
	lead.TenantID = tenantID

	if err := lc.repo.Update(&lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update lead",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Lead updated successfully",
		"data":    lead,
	})
}

type leadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateLeadStatus godoc
// @Summary Move a lead through the pipeline
// @Description Change a lead's status (new, contacted, scheduled, converted, lost)
// @Tags lead
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param status body leadStatusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Status updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /leads/{id}/status [patch]
func (lc *LeadController) UpdateLeadStatus(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid lead ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req leadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	switch req.Status {
	case models.LeadStatusNew, models.LeadStatusContacted, models.LeadStatusScheduled,
		models.LeadStatusConverted, models.LeadStatusLost:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid status",
			"error":   "Unknown lead status",
		})
		return
	}

	if err := lc.repo.UpdateStatus(tenantID, uint(id), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update status",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status updated successfully",
		"data":    nil,
	})
}

// DeleteLead godoc
// @Summary Delete a lead
// @Description Delete a lead record by ID
// @Tags lead
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]interface{} "Lead deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid lead ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete lead"
// @Router /leads/{id} [delete]
func (lc *LeadController) DeleteLead(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid lead ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := lc.repo.Delete(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete lead",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Lead deleted successfully",
		"data":    nil,
	})
}
