package validation

import (
	"strings"

	"tripcheck/internal/models/plan_models"
)

// DedupeWindowMinutes is the time proximity within which two same-named
// entries are considered one. Exposed for the test suite; do not retune
// without product guidance.
const DedupeWindowMinutes = 30

// DedupeItinerary collapses duplicate entries on every day and returns a
// new document; the input is never mutated.
func DedupeItinerary(doc plan_models.Itinerary) plan_models.Itinerary {
	out := doc.Clone()
	for i := range out.Itinerary {
		out.Itinerary[i].Plan = ConsolidateHotelReturns(DedupeDay(out.Itinerary[i].Plan))
	}
	return out
}

// DedupeDay collapses duplicates within one day's plan. Two entries are
// duplicates when their normalized names match and their times fall
// within DedupeWindowMinutes, or when both are logistics entries of the
// same sub-category (same meal, same check-in/out type, both hotel
// returns). The survivor is the entry with the longer placeDetails,
// details length being the best available proxy for completeness.
func DedupeDay(plan []plan_models.PlanItem) []plan_models.PlanItem {
	kept := make([]plan_models.PlanItem, 0, len(plan))
	for _, item := range plan {
		matched := -1
		for i := range kept {
			if isDuplicate(kept[i], item) {
				matched = i
				break
			}
		}
		if matched == -1 {
			kept = append(kept, item)
			continue
		}
		if len(item.PlaceDetails) > len(kept[matched].PlaceDetails) {
			kept[matched] = item
		}
	}
	return kept
}

// ConsolidateHotelReturns keeps only the latest-occurring hotel-return
// entry of a day. Models routinely emit two or three differently worded
// "back to hotel" lines; DedupeDay catches most, this pass guarantees at
// most one survives.
func ConsolidateHotelReturns(plan []plan_models.PlanItem) []plan_models.PlanItem {
	count := 0
	best := -1
	bestMinute := -1
	for i, item := range plan {
		if !IsHotelReturn(item) {
			continue
		}
		count++
		minute, ok := MinuteOfDay(item.Time)
		if !ok {
			minute = -1
		}
		if best == -1 || minute >= bestMinute {
			best = i
			bestMinute = minute
		}
	}
	if count <= 1 {
		return plan
	}

	out := make([]plan_models.PlanItem, 0, len(plan)-count+1)
	for i, item := range plan {
		if IsHotelReturn(item) && i != best {
			continue
		}
		out = append(out, item)
	}
	return out
}

func isDuplicate(a, b plan_models.PlanItem) bool {
	nameA, nameB := normalizePlaceName(a.PlaceName), normalizePlaceName(b.PlaceName)
	if nameA != "" && nameA == nameB {
		ma, okA := MinuteOfDay(a.Time)
		mb, okB := MinuteOfDay(b.Time)
		if okA && okB && minuteGap(ma, mb) <= DedupeWindowMinutes {
			return true
		}
	}

	if !Classify(a).IsLogistics() || !Classify(b).IsLogistics() {
		return false
	}
	if IsHotelReturn(a) && IsHotelReturn(b) {
		return true
	}
	if IsCheckIn(a) && IsCheckIn(b) {
		return true
	}
	if IsCheckOut(a) && IsCheckOut(b) {
		return true
	}
	if kind := MealKind(a); kind != "" && kind == MealKind(b) {
		return true
	}
	return false
}

func normalizePlaceName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
