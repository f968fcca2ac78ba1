package nutrition

import "strings"

// ResolveMeasure picks the gram weight of one portion unit for a food.
//
// Selection order:
//  1. the explicitly selected measure, when present and usable
//  2. a measure whose name mentions "100 gram"/"100 grama" (the
//     reference databases ship one per food, in pt-BR or English)
//  3. the measure flagged as default
//  4. the first usable measure in the given ordering
//  5. an implicit 1 g/unit, so quantity is read directly as grams
//
// Measures with a non-positive gram weight are data errors and are
// skipped at every step. The result is always strictly positive.
func ResolveMeasure(measures []MeasureOption, selectedID *uint) float64 {
	if selectedID != nil {
		for _, m := range measures {
			if m.ID == *selectedID && m.Grams > 0 {
				return m.Grams
			}
		}
	}

	for _, m := range measures {
		if m.Grams > 0 && strings.Contains(strings.ToLower(m.Name), "100 gram") {
			return m.Grams
		}
	}

	for _, m := range measures {
		if m.Default && m.Grams > 0 {
			return m.Grams
		}
	}

	for _, m := range measures {
		if m.Grams > 0 {
			return m.Grams
		}
	}

	return 1
}
