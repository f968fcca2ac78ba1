package nutrition

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumEmptyIsZero(t *testing.T) {
	assert.Equal(t, Totals{}, Sum(nil))
	assert.Equal(t, Totals{}, Sum([]Totals{}))
}

func TestSumAddsAllFields(t *testing.T) {
	items := []Totals{
		{Grams: 100, Calories: 130, Protein: 2.5, Carbs: 28, Fats: 0.2, FiberG: 1.6, SodiumMg: 1},
		{Grams: 120, Calories: 195, Protein: 14.5, Carbs: 0, Fats: 15, SodiumMg: 60},
		{Grams: 80, Calories: 61, Protein: 0.8, Carbs: 14, Fats: 0.1, FiberG: 2.6},
	}

	got := Sum(items)
	assert.InDelta(t, 300, got.Grams, 1e-9)
	assert.InDelta(t, 386, got.Calories, 1e-9)
	assert.InDelta(t, 17.8, got.Protein, 1e-9)
	assert.InDelta(t, 42, got.Carbs, 1e-9)
	assert.InDelta(t, 15.3, got.Fats, 1e-9)
	assert.InDelta(t, 4.2, got.FiberG, 1e-9)
	assert.InDelta(t, 61, got.SodiumMg, 1e-9)
}

func TestSumIsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	items := make([]Totals, 20)
	for i := range items {
		items[i] = Totals{
			Grams:    rng.Float64() * 500,
			Calories: rng.Float64() * 900,
			Protein:  rng.Float64() * 40,
			Carbs:    rng.Float64() * 90,
			Fats:     rng.Float64() * 60,
		}
	}
	want := Sum(items)

	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Totals, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := Sum(shuffled)
		assert.InDelta(t, want.Calories, got.Calories, 1e-9)
		assert.InDelta(t, want.Protein, got.Protein, 1e-9)
		assert.InDelta(t, want.Carbs, got.Carbs, 1e-9)
		assert.InDelta(t, want.Fats, got.Fats, 1e-9)
		assert.InDelta(t, want.Grams, got.Grams, 1e-9)
	}
}

func TestSumIsHierarchical(t *testing.T) {
	breakfast := []Totals{
		{Calories: 130, Protein: 4},
		{Calories: 90, Protein: 3},
	}
	lunch := []Totals{
		{Calories: 450, Protein: 32},
		{Calories: 120, Protein: 2},
		{Calories: 60, Protein: 1},
	}

	// plan total over per-meal subtotals equals the flat sum over
	// every item
	perMeal := Sum([]Totals{Sum(breakfast), Sum(lunch)})
	flat := Sum(append(append([]Totals{}, breakfast...), lunch...))

	assert.InDelta(t, flat.Calories, perMeal.Calories, 1e-9)
	assert.InDelta(t, flat.Protein, perMeal.Protein, 1e-9)
}

func TestSumAfterRemovalHasNoResidue(t *testing.T) {
	a := Totals{Calories: 100, Protein: 10}
	b := Totals{Calories: 200, Protein: 5}
	_ = b
	c := Totals{Calories: 50, Protein: 1}

	// add a, b, then c; then drop b. The re-sum over the remaining
	// items must equal the sum computed from scratch.
	after := Sum([]Totals{a, c})
	scratch := Sum([]Totals{a, c})
	assert.Equal(t, scratch, after)
	assert.InDelta(t, 150, after.Calories, 1e-9)
	assert.InDelta(t, 11, after.Protein, 1e-9)
}
