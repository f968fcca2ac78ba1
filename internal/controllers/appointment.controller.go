package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
	"nutriclinic/internal/utils"
)

type AppointmentController struct {
	repo    repository.AppointmentRepository
	jobRepo repository.NotificationJobRepository
}

func NewAppointmentController(repo repository.AppointmentRepository, jobRepo repository.NotificationJobRepository) *AppointmentController {
	return &AppointmentController{repo: repo, jobRepo: jobRepo}
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Description Create an appointment for a client and queue a confirmation notification
// @Tags appointment
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment data"
// @Success 201 {object} map[string]interface{} "Appointment created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create appointment"
// @Router /appointments [post]
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if appt.StartsAt.IsZero() || appt.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Client and start time are required",
			"error":   "Missing client_id or starts_at",
		})
		return
	}

	appt.ID = 0
	appt.TenantID = tenantID
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}

	if err := ac.repo.Create(&appt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create appointment",
			"error":   err.Error(),
		})
		return
	}

	utils.EnqueueNotification(ac.jobRepo, tenantID, "appointment.booked", gin.H{
		"appointment_id": appt.ID,
		"client_id":      appt.ClientID,
		"starts_at":      appt.StartsAt,
	})

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Appointment created successfully",
		"data":    appt,
	})
}

// GetAppointments godoc
// @Summary List appointments in a date range
// @Description Retrieve appointments between from and to (YYYY-MM-DD, defaults to the current week)
// @Tags appointment
// @Produce json
// @Param from query string false "Range start"
// @Param to query string false "Range end"
// @Success 200 {object} map[string]interface{} "Appointments retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve appointments"
// @Router /appointments [get]
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	now := time.Now()
	start := now.AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 7)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date range",
				"error":   "from must be YYYY-MM-DD",
			})
			return
		}
		start = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date range",
				"error":   "to must be YYYY-MM-DD",
			})
			return
		}
		end = t.AddDate(0, 0, 1)
	}

	appts, err := ac.repo.FindByDateRange(tenantID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve appointments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointments retrieved successfully",
		"data":    appts,
	})
}

// GetAppointmentsByClient godoc
// @Summary List a client's appointments
// @Description Retrieve all appointments for one client, newest first
// @Tags appointment
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Appointments retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve appointments"
// @Router /appointments/client/{client_id} [get]
func (ac *AppointmentController) GetAppointmentsByClient(c *gin.Context) {
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

	appts, err := ac.repo.FindByClientID(tenantID, uint(clientID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve appointments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointments retrieved successfully",
		"data":    appts,
	})
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Description Update an appointment's schedule, kind, status or notes
// @Tags appointment
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param appointment body models.Appointment true "Appointment data"
// @Success 200 {object} map[string]interface{} "Appointment updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Router /appointments/{id} [put]
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid appointment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := ac.repo.FindByID(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Appointment not found",
			"error":   "No appointment exists with the provided ID",
		})
		return
	}

	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	appt.ID = uint(id)
	appt.TenantID = tenantID

	if err := ac.repo.Update(&appt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update appointment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment updated successfully",
		"data":    appt,
	})
}

// DeleteAppointment godoc
// @Summary Cancel and remove an appointment
// @Description Delete an appointment by ID
// @Tags appointment
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete appointment"
// @Router /appointments/{id} [delete]
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid appointment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := ac.repo.Delete(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete appointment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment deleted successfully",
		"data":    nil,
	})
}
