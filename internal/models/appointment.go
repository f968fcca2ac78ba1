package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

type Appointment struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	ClientID  uint           `gorm:"index;not null" json:"client_id"`
	Client    Client         `gorm:"foreignKey:ClientID" json:"-"`
	StartsAt  time.Time      `gorm:"index;not null" json:"starts_at"`
	EndsAt    time.Time      `json:"ends_at"`
	Kind      string         `json:"kind" example:"first_visit"`
	Status    string         `gorm:"default:scheduled" json:"status" example:"scheduled"`
	Notes     string         `json:"notes"`
}
