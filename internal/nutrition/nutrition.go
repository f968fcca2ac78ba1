// Package nutrition holds the meal-plan calculation logic: portion
// resolution, per-100g scaling, plan aggregation and the energy
// consistency check used by the custom-food flow.
package nutrition

// Atwater caloric densities, kcal per gram. Fixed physiological
// constants, not configuration.
const (
	KcalPerGramProtein = 4.0
	KcalPerGramCarb    = 4.0
	KcalPerGramFat     = 9.0
)

// Profile is a food's nutrient content per 100 grams. Values are
// read-only inputs to the calculations; missing optional fields
// (fiber, sodium, saturated fat) are simply zero.
type Profile struct {
	EnergyKcal    float64
	ProteinG      float64
	CarbohydrateG float64
	LipidG        float64
	FiberG        float64
	SodiumMg      float64
	SaturatedFatG float64
}

// MeasureOption is one portion descriptor available for a food,
// e.g. "colher de sopa" at 15 grams.
type MeasureOption struct {
	ID      uint
	Name    string
	Grams   float64
	Default bool
}

// Totals are absolute nutrient amounts for one item, one meal or a
// whole plan. Full precision; any rounding is the caller's concern.
type Totals struct {
	Grams         float64 `json:"grams_total"`
	Calories      float64 `json:"kcal_total"`
	Protein       float64 `json:"protein_total"`
	Carbs         float64 `json:"carb_total"`
	Fats          float64 `json:"fat_total"`
	FiberG        float64 `json:"fiber_total"`
	SodiumMg      float64 `json:"sodium_total"`
	SaturatedFatG float64 `json:"saturated_fat_total"`
}
