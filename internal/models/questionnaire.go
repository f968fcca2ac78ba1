package models

import (
	"time"

	"gorm.io/gorm"
)

// Questionnaire response statuses.
const (
	ResponseStatusPending   = "pending"
	ResponseStatusSubmitted = "submitted"
)

// Questionnaire is a reusable form template. Questions are stored as
// a JSON document; the backend treats them as opaque.
type Questionnaire struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID    uint           `gorm:"index;not null" json:"tenant_id"`
	Title       string         `gorm:"not null" json:"title" example:"Anamnese inicial"`
	Description string         `json:"description"`
	Questions   string         `gorm:"type:jsonb" json:"questions" swaggertype:"string"`
	Active      bool           `gorm:"default:true" json:"active"`
}

// QuestionnaireResponse links a questionnaire sent to one client with
// the answers they submit.
type QuestionnaireResponse struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID        uint           `gorm:"index;not null" json:"tenant_id"`
	QuestionnaireID uint           `gorm:"index;not null" json:"questionnaire_id"`
	Questionnaire   Questionnaire  `gorm:"foreignKey:QuestionnaireID" json:"-"`
	ClientID        uint           `gorm:"index;not null" json:"client_id"`
	Status          string         `gorm:"default:pending" json:"status" example:"pending"`
	Answers         string         `gorm:"type:jsonb" json:"answers" swaggertype:"string"`
	SubmittedAt     *time.Time     `json:"submitted_at,omitempty"`
}
