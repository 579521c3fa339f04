package validation

import (
	"strings"

	"tripcheck/internal/models/plan_models"
)

// Category tags a plan item. Anything other than CategoryActivity is a
// logistics entry and does not count toward the day's activity quota.
type Category int

const (
	CategoryActivity Category = iota
	CategoryMeal
	CategoryTransit
	CategoryHotelOps
	CategoryRest
	CategoryAirport
)

func (c Category) String() string {
	switch c {
	case CategoryMeal:
		return "meal"
	case CategoryTransit:
		return "transit"
	case CategoryHotelOps:
		return "hotel-ops"
	case CategoryRest:
		return "rest"
	case CategoryAirport:
		return "airport"
	default:
		return "activity"
	}
}

// IsLogistics reports whether the category represents a meal, transit
// leg, hotel operation, rest block or airport operation.
func (c Category) IsLogistics() bool {
	return c != CategoryActivity
}

type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules is consulted in order; the first matching rule wins.
// Single-word keywords match on word boundaries so "rest" does not fire
// on "restaurant"; multi-word keywords match as substrings.
var categoryRules = []categoryRule{
	{CategoryMeal, []string{
		"breakfast", "brunch", "lunch", "dinner", "snack", "merienda",
		"restaurant", "eatery", "food trip", "street food", "buffet",
		"coffee break",
	}},
	{CategoryTransit, []string{
		"transfer", "arrive", "arrival", "depart", "departure",
		"taxi", "jeepney", "tricycle", "grab", "shuttle", "ferry",
		"bus ride", "van ride", "travel to", "drive to",
		"pick up", "pickup", "drop off", "drop-off",
	}},
	{CategoryHotelOps, []string{
		"check-in", "check in", "checkin",
		"check-out", "check out", "checkout",
		"return to hotel", "back to hotel",
		"return to the hotel", "back to the hotel",
		"freshen up", "settle in",
	}},
	{CategoryRest, []string{
		"rest", "relax", "unwind", "free time", "downtime", "leisure",
		"siesta", "at your own pace",
	}},
}

// airportContext: "airport" alone is ambiguous (plenty of attractions sit
// on Airport Road); it only reads as logistics next to an operational word.
var airportContext = []string{
	"arrival", "arrive", "departure", "depart", "terminal", "boarding",
	"flight", "check-in", "check in",
}

// Classify categorizes a single plan item from its name and details.
// Pure and stateless: identical input always yields the same category.
func Classify(item plan_models.PlanItem) Category {
	text := strings.ToLower(item.PlaceName + " " + item.PlaceDetails)
	words := tokenize(text)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if matchKeyword(text, words, kw) {
				return rule.category
			}
		}
	}

	if matchKeyword(text, words, "airport") {
		for _, kw := range airportContext {
			if matchKeyword(text, words, kw) {
				return CategoryAirport
			}
		}
	}

	return CategoryActivity
}

// DayPartition splits one day's plan into attractions and logistics,
// preserving the original relative order within each slice.
type DayPartition struct {
	Activities    []plan_models.PlanItem
	Logistics     []plan_models.PlanItem
	ActivityCount int
}

// ClassifyDay partitions a day's plan.
func ClassifyDay(plan []plan_models.PlanItem) DayPartition {
	part := DayPartition{
		Activities: make([]plan_models.PlanItem, 0, len(plan)),
		Logistics:  make([]plan_models.PlanItem, 0, len(plan)),
	}
	for _, item := range plan {
		if Classify(item).IsLogistics() {
			part.Logistics = append(part.Logistics, item)
		} else {
			part.Activities = append(part.Activities, item)
		}
	}
	part.ActivityCount = len(part.Activities)
	return part
}

// IsCheckIn reports whether the item is a hotel check-in entry.
func IsCheckIn(item plan_models.PlanItem) bool {
	text := strings.ToLower(item.PlaceName + " " + item.PlaceDetails)
	if containsAny(text, "check-out", "check out", "checkout") {
		return false
	}
	return containsAny(text, "check-in", "check in", "checkin")
}

// IsCheckOut reports whether the item is a hotel check-out entry.
func IsCheckOut(item plan_models.PlanItem) bool {
	text := strings.ToLower(item.PlaceName + " " + item.PlaceDetails)
	return containsAny(text, "check-out", "check out", "checkout")
}

// IsHotelReturn matches the many ways models phrase the end-of-day trip
// back to the hotel ("Return to hotel", "Back to Bayfront Hotel", ...).
func IsHotelReturn(item plan_models.PlanItem) bool {
	text := strings.ToLower(item.PlaceName + " " + item.PlaceDetails)
	if !strings.Contains(text, "hotel") {
		return false
	}
	if containsAny(text, "check-in", "check in", "checkin", "check-out", "check out", "checkout") {
		return false
	}
	return containsAny(text, "return", "back to", "head back", "go back")
}

// mealKinds ordered so compound phrasings ("late lunch / early dinner")
// resolve to the earliest-mentioned meal.
var mealKinds = []string{"breakfast", "brunch", "lunch", "merienda", "snack", "dinner"}

// MealKind returns the meal sub-category of an item, or "" when the item
// does not reference a specific meal.
func MealKind(item plan_models.PlanItem) string {
	text := strings.ToLower(item.PlaceName + " " + item.PlaceDetails)
	words := tokenize(text)
	for _, kind := range mealKinds {
		if matchKeyword(text, words, kind) {
			return kind
		}
	}
	return ""
}

func matchKeyword(text string, words map[string]struct{}, kw string) bool {
	if strings.ContainsAny(kw, " -") {
		return strings.Contains(text, kw)
	}
	_, ok := words[kw]
	return ok
}

func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func tokenize(text string) map[string]struct{} {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
