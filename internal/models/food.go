package models

import (
	"time"

	"gorm.io/gorm"

	"nutriclinic/internal/nutrition"
)

// Food source tags. Reference foods come from the bundled TACO-style
// table and have TenantID 0; custom foods are authored by one clinic.
const (
	FoodSourceReference = "taco"
	FoodSourceCustom    = "custom"
)

// Food holds a nutrient profile per 100 grams. Read-only input to
// the calculation code; edits to a food never rewrite the totals
// already snapshotted on saved meal items.
type Food struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TenantID      uint           `gorm:"index" json:"tenant_id"`
	Name          string         `gorm:"not null;index" json:"name" example:"Arroz branco cozido"`
	Category      string         `json:"category" example:"Cereais"`
	Source        string         `gorm:"default:custom" json:"source" example:"taco"`
	EnergyKcal    float64        `json:"energy_kcal" example:"128"`
	ProteinG      float64        `json:"protein_g" example:"2.5"`
	CarbohydrateG float64        `json:"carbohydrate_g" example:"28.1"`
	LipidG        float64        `json:"lipid_g" example:"0.2"`
	FiberG        float64        `json:"fiber_g" example:"1.6"`
	SodiumMg      float64        `json:"sodium_mg" example:"1"`
	SaturatedFatG float64        `json:"saturated_fat_g" example:"0.1"`

	Measures []Measure `gorm:"foreignKey:FoodID" json:"measures,omitempty"`
}

// Profile adapts the stored per-100g values to the calculation
// package's input type.
func (f *Food) Profile() nutrition.Profile {
	return nutrition.Profile{
		EnergyKcal:    f.EnergyKcal,
		ProteinG:      f.ProteinG,
		CarbohydrateG: f.CarbohydrateG,
		LipidG:        f.LipidG,
		FiberG:        f.FiberG,
		SodiumMg:      f.SodiumMg,
		SaturatedFatG: f.SaturatedFatG,
	}
}

// Measure is a named portion for one food, e.g. "colher de sopa" at
// 15 grams. Grams must be positive; rows that violate that are
// ignored by the resolver.
type Measure struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FoodID      uint           `gorm:"index;not null" json:"food_id"`
	MeasureName string         `gorm:"not null" json:"measure_name" example:"colher de sopa"`
	Grams       float64        `gorm:"not null" json:"grams" example:"15"`
	IsDefault   bool           `gorm:"default:false" json:"is_default"`
}

// Option adapts a measure row to the resolver's input type.
func (m *Measure) Option() nutrition.MeasureOption {
	return nutrition.MeasureOption{
		ID:      m.ID,
		Name:    m.MeasureName,
		Grams:   m.Grams,
		Default: m.IsDefault,
	}
}

// MeasureOptions converts a measure slice for the resolver.
func MeasureOptions(measures []Measure) []nutrition.MeasureOption {
	opts := make([]nutrition.MeasureOption, len(measures))
	for i := range measures {
		opts[i] = measures[i].Option()
	}
	return opts
}
