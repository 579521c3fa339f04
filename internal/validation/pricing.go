package validation

import (
	"strconv"
	"strings"
)

// PriceRange is an expected spend window in the itinerary's currency.
type PriceRange struct {
	Min float64
	Max float64
}

// Accommodation tiers the price book understands.
const (
	TierBudget   = "budget"
	TierStandard = "standard"
	TierLuxury   = "luxury"
)

// SuspiciousRoundPrices are round values models fall back to when they
// have no real pricing; three or more occurrences of one of these is a
// placeholder signal.
var SuspiciousRoundPrices = []float64{100, 200, 500, 1000}

// PriceBook holds reference spend ranges per accommodation tier plus
// destination multipliers. Ranges are baselined on Philippine city
// pricing (multiplier 1.0); other regions scale from there.
type PriceBook struct {
	nightly map[string]PriceRange
	meals   map[string]PriceRange
	// ordered so a destination naming two regions ("El Nido, Palawan")
	// always resolves the same way
	regional []regionRate
}

type regionRate struct {
	region     string
	multiplier float64
}

// NewPriceBook returns the default reference table.
func NewPriceBook() *PriceBook {
	return &PriceBook{
		nightly: map[string]PriceRange{
			TierBudget:   {Min: 800, Max: 2500},
			TierStandard: {Min: 2500, Max: 8000},
			TierLuxury:   {Min: 8000, Max: 30000},
		},
		meals: map[string]PriceRange{
			TierBudget:   {Min: 400, Max: 1200},
			TierStandard: {Min: 900, Max: 3000},
			TierLuxury:   {Min: 2500, Max: 10000},
		},
		regional: []regionRate{
			{"el nido", 1.25},
			{"boracay", 1.25},
			{"palawan", 1.15},
			{"manila", 1.2},
			{"siargao", 1.1},
			{"cebu", 1.0},
			{"baguio", 0.95},
			{"davao", 0.9},
			{"tokyo", 2.8},
			{"singapore", 2.5},
			{"seoul", 2.2},
			{"bangkok", 1.1},
			{"bali", 1.0},
		},
	}
}

// NightlyRange returns the expected per-night accommodation spend for a
// tier, scaled by the destination's regional multiplier.
func (b *PriceBook) NightlyRange(tier, destination string) PriceRange {
	return scaleRange(b.nightly[NormalizeTier(tier)], b.Multiplier(destination))
}

// MealRange returns the expected per-day meal spend for a tier, scaled
// by the destination's regional multiplier.
func (b *PriceBook) MealRange(tier, destination string) PriceRange {
	return scaleRange(b.meals[NormalizeTier(tier)], b.Multiplier(destination))
}

// Multiplier looks up the regional cost multiplier for a destination.
// The destination is an opaque label; the first region keyword it
// contains wins, and unknown destinations get 1.0.
func (b *PriceBook) Multiplier(destination string) float64 {
	dest := strings.ToLower(destination)
	for _, r := range b.regional {
		if strings.Contains(dest, r.region) {
			return r.multiplier
		}
	}
	return 1.0
}

// NormalizeTier maps free-form tier labels onto the three known tiers,
// defaulting to standard.
func NormalizeTier(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case TierBudget, "cheap", "backpacker", "hostel":
		return TierBudget
	case TierLuxury, "luxurious", "premium", "5-star":
		return TierLuxury
	default:
		return TierStandard
	}
}

func scaleRange(r PriceRange, mult float64) PriceRange {
	return PriceRange{Min: r.Min * mult, Max: r.Max * mult}
}

// ParsePrice extracts the numeric value from a currency-tagged pricing
// string ("PHP 500", "₱1,200.50", "$25 per head"). Free or unpriced
// entries return ok=false.
func ParsePrice(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || strings.Contains(s, "free") || strings.Contains(s, "n/a") {
		return 0, false
	}

	var num strings.Builder
	seenDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(r)
			seenDigit = true
		case r == '.' && seenDigit:
			num.WriteRune(r)
		case r == ',':
			// thousands separator
		default:
			if seenDigit {
				goto done
			}
		}
	}
done:
	if !seenDigit {
		return 0, false
	}
	v, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
