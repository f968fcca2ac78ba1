package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestResolveMeasure(t *testing.T) {
	tests := []struct {
		name       string
		measures   []MeasureOption
		selectedID *uint
		expected   float64
	}{
		{
			name:       "no measures falls back to grams",
			measures:   nil,
			selectedID: nil,
			expected:   1,
		},
		{
			name: "explicit selection wins",
			measures: []MeasureOption{
				{ID: 1, Name: "colher de sopa", Grams: 15},
				{ID: 2, Name: "fatia", Grams: 25},
			},
			selectedID: uintPtr(2),
			expected:   25,
		},
		{
			name: "prefers 100 gramas over first listed",
			measures: []MeasureOption{
				{ID: 1, Name: "colher de sopa", Grams: 15},
				{ID: 2, Name: "100 gramas", Grams: 100},
			},
			selectedID: nil,
			expected:   100,
		},
		{
			name: "100 gram match is case insensitive",
			measures: []MeasureOption{
				{ID: 1, Name: "xícara", Grams: 240},
				{ID: 2, Name: "100 Grams", Grams: 100},
			},
			selectedID: nil,
			expected:   100,
		},
		{
			name: "default flag beats first listed",
			measures: []MeasureOption{
				{ID: 1, Name: "colher de chá", Grams: 5},
				{ID: 2, Name: "copo", Grams: 200, Default: true},
			},
			selectedID: nil,
			expected:   200,
		},
		{
			name: "first usable measure when nothing else applies",
			measures: []MeasureOption{
				{ID: 1, Name: "unidade", Grams: 60},
				{ID: 2, Name: "porção", Grams: 120},
			},
			selectedID: nil,
			expected:   60,
		},
		{
			name: "invalid grams are skipped",
			measures: []MeasureOption{
				{ID: 1, Name: "unidade", Grams: 0},
				{ID: 2, Name: "porção", Grams: -30},
				{ID: 3, Name: "fatia", Grams: 25},
			},
			selectedID: nil,
			expected:   25,
		},
		{
			name: "selected measure with invalid grams falls through",
			measures: []MeasureOption{
				{ID: 1, Name: "unidade", Grams: 0},
				{ID: 2, Name: "fatia", Grams: 25},
			},
			selectedID: uintPtr(1),
			expected:   25,
		},
		{
			name: "all measures invalid falls back to grams",
			measures: []MeasureOption{
				{ID: 1, Name: "unidade", Grams: 0},
				{ID: 2, Name: "porção", Grams: -1},
			},
			selectedID: nil,
			expected:   1,
		},
		{
			name: "unknown selected id falls back to default policy",
			measures: []MeasureOption{
				{ID: 1, Name: "colher de sopa", Grams: 15},
				{ID: 2, Name: "100 gramas", Grams: 100},
			},
			selectedID: uintPtr(99),
			expected:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMeasure(tt.measures, tt.selectedID)
			assert.Equal(t, tt.expected, got)
			assert.Greater(t, got, 0.0)
		})
	}
}
