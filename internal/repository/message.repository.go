package repository

import (
	"time"

	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(msg *models.Message) error
	FindConversation(tenantID, clientID uint, limit int) ([]models.Message, error)
	MarkRead(tenantID, clientID uint, role string) error
	CountUnread(tenantID, clientID uint, role string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db}
}

func (r *messageRepository) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) FindConversation(tenantID, clientID uint, limit int) ([]models.Message, error) {
	var msgs []models.Message
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	err := r.db.Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Order("created_at ASC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// MarkRead stamps every unread message sent by the other side of the
// conversation.
func (r *messageRepository) MarkRead(tenantID, clientID uint, role string) error {
	now := time.Now()
	return r.db.Model(&models.Message{}).
		Where("tenant_id = ? AND client_id = ? AND sender_role <> ? AND read_at IS NULL",
			tenantID, clientID, role).
		Update("read_at", &now).Error
}

func (r *messageRepository) CountUnread(tenantID, clientID uint, role string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("tenant_id = ? AND client_id = ? AND sender_role <> ? AND read_at IS NULL",
			tenantID, clientID, role).
		Count(&count).Error
	return count, err
}
