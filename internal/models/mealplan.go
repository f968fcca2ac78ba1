package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal plan statuses.
const (
	PlanStatusDraft    = "draft"
	PlanStatusActive   = "active"
	PlanStatusArchived = "archived"
)

// MealPlan is a named collection of meals for one client over a date
// range. Target values are goals set by the nutritionist; they are
// independent of the computed actual totals and are never overwritten
// by them.
type MealPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID  uint           `gorm:"index;not null" json:"tenant_id"`
	ClientID  uint           `gorm:"index;not null" json:"client_id"`
	Client    Client         `gorm:"foreignKey:ClientID" json:"-"`
	Name      string         `gorm:"not null" json:"name" example:"Plano de emagrecimento"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Status    string         `gorm:"default:draft" json:"status" example:"draft"`

	TargetKcal    float64 `json:"target_kcal" example:"1800"`
	TargetProtein float64 `json:"target_protein" example:"120"`
	TargetCarb    float64 `json:"target_carb" example:"180"`
	TargetFat     float64 `json:"target_fat" example:"60"`

	Meals []Meal `gorm:"foreignKey:MealPlanID" json:"meals,omitempty"`
}

// Meal is one ordered, time-tagged slot within a plan, either from
// the default breakfast/lunch/dinner set or a custom slot.
type Meal struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	MealPlanID  uint           `gorm:"index;not null" json:"meal_plan_id"`
	Name        string         `gorm:"not null" json:"name" example:"Café da Manhã"`
	ScheduledAt string         `json:"scheduled_at" example:"07:00"`
	Icon        string         `json:"icon" example:"coffee"`
	Position    int            `json:"position" example:"0"`
	Custom      bool           `gorm:"default:false" json:"custom"`

	Items []MealItem `gorm:"foreignKey:MealID" json:"items,omitempty"`
}

// MealItem associates one food, an optional measure and a quantity
// within a meal. The *_Total columns are snapshots computed at save
// time; later edits to the referenced food do not touch them.
type MealItem struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	MealID    uint           `gorm:"index;not null" json:"meal_id"`
	FoodID    uint           `gorm:"not null" json:"food_id"`
	Food      Food           `gorm:"foreignKey:FoodID" json:"-"`
	MeasureID *uint          `json:"measure_id"`
	Quantity  float64        `gorm:"not null" json:"quantity" example:"2"`

	GramsTotal   float64 `json:"grams_total" example:"100"`
	KcalTotal    float64 `json:"kcal_total" example:"128"`
	ProteinTotal float64 `json:"protein_total" example:"2.5"`
	CarbTotal    float64 `json:"carb_total" example:"28.1"`
	FatTotal     float64 `json:"fat_total" example:"0.2"`
}
