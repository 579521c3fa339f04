package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"PHP 500", 500, true},
		{"₱1,200.50", 1200.50, true},
		{"$25 per head", 25, true},
		{"approx 300-400", 300, true},
		{"75.00", 75, true},
		{"Free", 0, false},
		{"free entrance", 0, false},
		{"N/A", 0, false},
		{"", 0, false},
		{"varies", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParsePrice(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPriceBookMultiplier(t *testing.T) {
	book := NewPriceBook()
	assert.Equal(t, 1.0, book.Multiplier("Cebu, Philippines"))
	assert.Equal(t, 2.8, book.Multiplier("Tokyo, Japan"))
	assert.Equal(t, 1.0, book.Multiplier("Somewhere Unlisted"))

	// a destination naming two regions resolves to the first listed one
	assert.Equal(t, 1.25, book.Multiplier("El Nido, Palawan"))
}

func TestPriceBookRangesScaleByRegion(t *testing.T) {
	book := NewPriceBook()

	cebu := book.NightlyRange(TierStandard, "Cebu")
	manila := book.NightlyRange(TierStandard, "Manila")
	assert.Equal(t, cebu.Min*1.2, manila.Min)
	assert.Equal(t, cebu.Max*1.2, manila.Max)

	meals := book.MealRange(TierLuxury, "Cebu")
	assert.Equal(t, 2500.0, meals.Min)
	assert.Equal(t, 10000.0, meals.Max)
}

func TestNormalizeTier(t *testing.T) {
	assert.Equal(t, TierBudget, NormalizeTier("Budget"))
	assert.Equal(t, TierBudget, NormalizeTier("backpacker"))
	assert.Equal(t, TierLuxury, NormalizeTier("Premium"))
	assert.Equal(t, TierLuxury, NormalizeTier("5-star"))
	assert.Equal(t, TierStandard, NormalizeTier("standard"))
	assert.Equal(t, TierStandard, NormalizeTier(""))
	assert.Equal(t, TierStandard, NormalizeTier("mid-range"))
}
