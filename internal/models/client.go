package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a patient record owned by one clinic.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	Name      string         `gorm:"not null" json:"name" example:"Maria Souza"`
	Email     string         `json:"email" example:"maria@example.com"`
	Phone     string         `json:"phone" example:"+55 11 91234-5678"`
	BirthDate *time.Time     `json:"birth_date,omitempty"`
	Sex       string         `json:"sex" example:"F"`
	Notes     string         `json:"notes"`
}
