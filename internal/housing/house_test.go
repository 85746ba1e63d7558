package housing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricePerSquareFoot(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		area     float64
		expected float64
	}{
		{name: "Round house", price: 300000, area: 1500, expected: 200.0},
		{name: "Rounds to two decimals", price: 250000, area: 1724, expected: 145.01},
		{name: "Zero area returns zero", price: 250000, area: 0, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &House{Price: tt.price, Area: tt.area}
			assert.Equal(t, tt.expected, h.PricePerSquareFoot())
		})
	}
}

func TestIsNewConstruction(t *testing.T) {
	const referenceYear = 2024

	tests := []struct {
		name      string
		yearBuilt int
		expected  bool
	}{
		{name: "Built this year", yearBuilt: 2024, expected: true},
		{name: "Four years old is new", yearBuilt: 2020, expected: true},
		{name: "Exactly five years old is not new", yearBuilt: 2019, expected: false},
		{name: "Old house", yearBuilt: 1980, expected: false},
		{name: "Future build year is never new", yearBuilt: 2025, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &House{YearBuilt: tt.yearBuilt}
			assert.Equal(t, tt.expected, h.IsNewConstruction(referenceYear))
		})
	}
}

func TestComputeQuality(t *testing.T) {
	tests := []struct {
		name     string
		house    House
		expected QualityScore
	}{
		{
			name:     "New large house scores excellent",
			house:    House{YearBuilt: 2022, Area: 3200, Bedrooms: 5},
			expected: QualityExcellent,
		},
		{
			name:     "Recent mid-size house scores good",
			house:    House{YearBuilt: 2016, Area: 2100, Bedrooms: 4},
			expected: QualityGood,
		},
		{
			name:     "Mid-range house scores average",
			house:    House{YearBuilt: 2010, Area: 1600, Bedrooms: 3},
			expected: QualityAverage,
		},
		{
			name:     "Older small house scores fair",
			house:    House{YearBuilt: 1990, Area: 1200, Bedrooms: 2},
			expected: QualityFair,
		},
		{
			name:     "Old tiny house scores poor",
			house:    House{YearBuilt: 1950, Area: 800, Bedrooms: 1},
			expected: QualityPoor,
		},
		{
			name: "Average of 4.67 crosses the excellent threshold",
			// age score 5, size score 5, bedroom score 4
			house:    House{YearBuilt: 2021, Area: 3000, Bedrooms: 4},
			expected: QualityExcellent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.house
			h.ComputeQuality()
			assert.Equal(t, tt.expected, h.Quality)
		})
	}
}

func TestComputeQualityIdempotent(t *testing.T) {
	h := &House{YearBuilt: 2010, Area: 1600, Bedrooms: 3}

	h.ComputeQuality()
	first := h.Quality
	require.NotEqual(t, QualityUnset, first)

	h.ComputeQuality()
	assert.Equal(t, first, h.Quality)

	// A pre-set score is never recomputed, even when the attributes would
	// derive a different one.
	preset := &House{YearBuilt: 1950, Area: 800, Bedrooms: 1, Quality: QualityExcellent}
	preset.ComputeQuality()
	assert.Equal(t, QualityExcellent, preset.Quality)
}

func TestMarkSold(t *testing.T) {
	h := &House{ID: 1, Available: true}
	h.MarkSold()
	assert.False(t, h.Available)
}
