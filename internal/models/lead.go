package models

import (
	"time"

	"gorm.io/gorm"
)

// Lead pipeline statuses.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusScheduled = "scheduled"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Lead is a prospect who has not become a client yet.
type Lead struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	Name      string         `gorm:"not null" json:"name" example:"João Lima"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Source    string         `json:"source" example:"instagram"`
	Status    string         `gorm:"default:new" json:"status" example:"new"`
	Notes     string         `json:"notes"`
}
