package nutrition

// Sum adds item totals into one aggregate. A plain commutative sum:
// the order of items never changes the result beyond floating-point
// noise, and an empty slice yields the zero value.
//
// Callers re-sum the complete current item set after every edit
// instead of patching a running total, so removed items can never
// leave a residue in the displayed aggregate.
func Sum(items []Totals) Totals {
	var t Totals
	for _, it := range items {
		t.Grams += it.Grams
		t.Calories += it.Calories
		t.Protein += it.Protein
		t.Carbs += it.Carbs
		t.Fats += it.Fats
		t.FiberG += it.FiberG
		t.SodiumMg += it.SodiumMg
		t.SaturatedFatG += it.SaturatedFatG
	}
	return t
}
