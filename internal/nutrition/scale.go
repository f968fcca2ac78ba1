package nutrition

import (
	"fmt"
	"math"
)

// Scale converts a per-100g profile into absolute totals for
// quantity units of gramsPerUnit grams each.
//
// A zero quantity is legal and yields all-zero totals (an item staged
// in the builder before the user typed an amount). Negative or
// non-finite inputs are caller bugs and are rejected.
func Scale(p Profile, gramsPerUnit, quantity float64) (Totals, error) {
	if !isFinite(gramsPerUnit) || gramsPerUnit <= 0 {
		return Totals{}, fmt.Errorf("nutrition: invalid grams per unit %v", gramsPerUnit)
	}
	if !isFinite(quantity) || quantity < 0 {
		return Totals{}, fmt.Errorf("nutrition: invalid quantity %v", quantity)
	}

	grams := gramsPerUnit * quantity
	factor := grams / 100

	return Totals{
		Grams:         grams,
		Calories:      p.EnergyKcal * factor,
		Protein:       p.ProteinG * factor,
		Carbs:         p.CarbohydrateG * factor,
		Fats:          p.LipidG * factor,
		FiberG:        p.FiberG * factor,
		SodiumMg:      p.SodiumMg * factor,
		SaturatedFatG: p.SaturatedFatG * factor,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
