package nutrition

import (
	"fmt"
	"math"
)

// Energy tolerance for the custom-food consistency check: the declared
// kcal may differ from the macro-derived kcal by up to 10% of the
// derived value or 50 kcal, whichever is larger. Label rounding alone
// easily produces deviations of a few dozen kcal.
const (
	energyTolerancePct  = 0.10
	energyToleranceKcal = 50.0
)

// EnergyCheck is the advisory result of ValidateEnergy. An invalid
// result never blocks saving a food; it is surfaced as an inline
// warning in the custom-food form.
type EnergyCheck struct {
	Valid        bool    `json:"valid"`
	ExpectedKcal float64 `json:"expected_kcal"`
	Message      string  `json:"message,omitempty"`
}

// ValidateEnergy checks that a manually entered energy value is
// plausible given the entered macros (4/4/9 kcal per gram). A food
// with no declared energy yet is incomplete, not inconsistent, and
// passes.
func ValidateEnergy(kcal, proteinG, carbG, fatG float64) EnergyCheck {
	for _, v := range []float64{kcal, proteinG, carbG, fatG} {
		if !isFinite(v) {
			return EnergyCheck{Message: "nutrition facts must be finite numbers"}
		}
	}
	if proteinG < 0 || carbG < 0 || fatG < 0 {
		return EnergyCheck{Message: "macronutrient grams must be non-negative"}
	}

	expected := proteinG*KcalPerGramProtein + carbG*KcalPerGramCarb + fatG*KcalPerGramFat

	if kcal <= 0 {
		return EnergyCheck{Valid: true, ExpectedKcal: expected}
	}

	tolerance := math.Max(expected*energyTolerancePct, energyToleranceKcal)
	diff := math.Abs(kcal - expected)

	if diff > tolerance {
		return EnergyCheck{
			Valid:        false,
			ExpectedKcal: expected,
			Message: fmt.Sprintf(
				"declared energy (%.0f kcal) differs from the value derived from macros (%.0f kcal) by %.0f kcal; check the entered values",
				kcal, expected, diff),
		}
	}

	return EnergyCheck{Valid: true, ExpectedKcal: expected}
}
