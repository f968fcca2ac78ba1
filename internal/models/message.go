package models

import (
	"time"

	"gorm.io/gorm"
)

// Message sender roles.
const (
	SenderStaff  = "staff"
	SenderClient = "client"
)

// Message is one entry in the conversation between clinic staff and a
// client.
type Message struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID   uint           `gorm:"index;not null" json:"tenant_id"`
	ClientID   uint           `gorm:"index;not null" json:"client_id"`
	SenderID   uint           `json:"sender_id"`
	SenderRole string         `gorm:"not null" json:"sender_role" example:"staff"`
	Body       string         `gorm:"not null" json:"body"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
}

// Notification job statuses.
const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// NotificationJob is an outbound notification queued for delivery by
// the notification worker (new message, appointment reminder,
// questionnaire sent). Payload is a JSON document published verbatim
// to the broker.
type NotificationJob struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID      uint           `gorm:"index;not null" json:"tenant_id"`
	CorrelationID string         `gorm:"uniqueIndex" json:"correlation_id"`
	Kind          string         `gorm:"not null" json:"kind" example:"message.created"`
	Payload       string         `gorm:"type:jsonb" json:"payload" swaggertype:"string"`
	Status        string         `gorm:"default:pending;index" json:"status"`
	Attempts      int            `gorm:"default:0" json:"attempts"`
	LastError     string         `json:"last_error,omitempty"`
	SentAt        *time.Time     `json:"sent_at,omitempty"`
}
