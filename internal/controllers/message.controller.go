package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/middleware"
	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
	"nutriclinic/internal/utils"
)

type MessageController struct {
	repo    repository.MessageRepository
	jobRepo repository.NotificationJobRepository
}

func NewMessageController(repo repository.MessageRepository, jobRepo repository.NotificationJobRepository) *MessageController {
	return &MessageController{repo: repo, jobRepo: jobRepo}
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// SendMessage godoc
// @Summary Send a message to a client
// @Description Append a staff message to the conversation and queue a delivery notification
// @Tags message
// @Accept json
// @Produce json
// @Param client_id path int true "Client ID"
// @Param message body sendMessageRequest true "Message body"
// @Success 201 {object} map[string]interface{} "Message sent successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to send message"
// @Router /messages/client/{client_id} [post]
func (mc *MessageController) SendMessage(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid client ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	msg := models.Message{
		TenantID:   tenantID,
		ClientID:   uint(clientID),
		SenderID:   userID,
		SenderRole: models.SenderStaff,
		Body:       req.Body,
	}

	if err := mc.repo.Create(&msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send message",
			"error":   err.Error(),
		})
		return
	}

	utils.EnqueueNotification(mc.jobRepo, tenantID, "message.created", gin.H{
		"message_id": msg.ID,
		"client_id":  msg.ClientID,
		"sender_id":  msg.SenderID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message sent successfully",
		"data":    msg,
	})
}

// GetConversation godoc
// @Summary Get the conversation with a client
// @Description Retrieve messages exchanged with one client, oldest first; marks incoming messages read
// @Tags message
// @Produce json
// @Param client_id path int true "Client ID"
// @Param limit query int false "Maximum messages (default 100)"
// @Success 200 {object} map[string]interface{} "Messages retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve messages"
// @Router /messages/client/{client_id} [get]
func (mc *MessageController) GetConversation(c *gin.Context) {
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

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	msgs, err := mc.repo.FindConversation(tenantID, uint(clientID), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve messages",
			"error":   err.Error(),
		})
		return
	}

	// Opening the conversation marks the client's messages as read.
	if err := mc.repo.MarkRead(tenantID, uint(clientID), models.SenderStaff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark messages read",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages retrieved successfully",
		"data":    msgs,
	})
}

// GetUnreadCount godoc
// @Summary Count unread messages from a client
// @Description Number of client messages not yet read by staff
// @Tags message
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Unread count retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 500 {object} map[string]interface{} "Failed to count messages"
// @Router /messages/client/{client_id}/unread [get]
func (mc *MessageController) GetUnreadCount(c *gin.Context) {
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

	count, err := mc.repo.CountUnread(tenantID, uint(clientID), models.SenderStaff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to count messages",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Unread count retrieved successfully",
		"data":    gin.H{"unread": count},
	})
}
