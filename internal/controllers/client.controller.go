package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
)

type ClientController struct {
	repo repository.ClientRepository
}

func NewClientController(repo repository.ClientRepository) *ClientController {
	return &ClientController{repo: repo}
}

// CreateClient godoc
// @Summary Create a new client
// @Description Create a client record for the authenticated clinic
// @Tags client
// @Accept json
// @Produce json
// @Param client body models.Client true "Client data"
// @Success 201 {object} map[string]interface{} "Client created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create client"
// @Router /clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if client.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Client name is required",
			"error":   "Name must not be empty",
		})
		return
	}

	client.TenantID = tenantID

	if err := cc.repo.Create(&client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Client created successfully",
		"data":    client,
	})
}

// GetClients godoc
// @Summary List clients
// @Description Retrieve the clinic's clients, optionally filtered by name
// @Tags client
// @Produce json
// @Param search query string false "Name filter"
// @Success 200 {object} map[string]interface{} "Clients retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve clients"
// @Router /clients [get]
func (cc *ClientController) GetClients(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	clients, err := cc.repo.FindAll(tenantID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve clients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Clients retrieved successfully",
		"data":    clients,
	})
}

// GetClientByID godoc
// @Summary Get a client by ID
// @Description Retrieve one client record
// @Tags client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Client retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /clients/{id} [get]
func (cc *ClientController) GetClientByID(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid client ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	client, err := cc.repo.FindByID(tenantID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
			"error":   "No client exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client retrieved successfully",
		"data":    client,
	})
}

// UpdateClient godoc
// @Summary Update a client
// @Description Update a client record
// @Tags client
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param client body models.Client true "Client data"
// @Success 200 {object} map[string]interface{} "Client updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /clients/{id} [put]
func (cc *ClientController) UpdateClient(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid client ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := cc.repo.FindByID(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
			"error":   "No client exists with the provided ID",
		})
		return
	}

	client.ID = uint(id)
	client.TenantID = tenantID

	if err := cc.repo.Update(&client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client updated successfully",
		"data":    client,
	})
}

// DeleteClient godoc
// @Summary Delete a client
// @Description Delete a client record by ID
// @Tags client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Client deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid client ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := cc.repo.FindByID(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
			"error":   "No client exists with the provided ID",
		})
		return
	}

	if err := cc.repo.Delete(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted successfully",
		"data":    nil,
	})
}
