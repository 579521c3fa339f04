package validation

import (
	"fmt"
	"sort"

	"tripcheck/internal/models/plan_models"
)

// synthesizedReturnTime is the clock slot given to an appended
// end-of-day hotel return.
const synthesizedReturnTime = "20:00"

// FixItinerary repairs activity-count violations and inserts missing
// mandatory logistics entries. It returns a new document; the input is
// never mutated, so callers that need a change count diff before/after.
//
// Per day: when the classified activity count exceeds the role's max,
// the first max activities are kept in their original order and the rest
// dropped; logistics entries always survive and the remaining list is
// re-sorted by normalized time so meal and transit anchors stay next to
// the entries they bracketed. Excess is trimmed in declared order rather
// than by score: the model's own ordering already encodes intended
// sequencing and no side information exists to re-rank.
//
// A second pass appends a synthesized hotel return to every middle day
// that does not already end with one. Arrival and departure days are
// only ever trimmed, never augmented: fabricating content for the
// travel-heavy edge days risks misleading the user.
//
// Days with an empty plan are skipped untouched; the structural
// validator flags them. FixItinerary never fails on malformed input.
func FixItinerary(doc plan_models.Itinerary, activityPreference int) plan_models.Itinerary {
	out := doc.Clone()
	totalDays := len(out.Itinerary)

	for i := range out.Itinerary {
		day := &out.Itinerary[i]
		if len(day.Plan) == 0 {
			continue
		}
		limits := ConstraintsFor(ResolveRole(i, totalDays), activityPreference)
		part := ClassifyDay(day.Plan)
		if part.ActivityCount > limits.Max {
			day.Plan = trimActivities(day.Plan, limits.Max)
		}
	}

	for i := range out.Itinerary {
		day := &out.Itinerary[i]
		if ResolveRole(i, totalDays) != RoleMiddle || len(day.Plan) == 0 {
			continue
		}
		day.Plan = ensureEndsWithHotelReturn(day.Plan, out.Hotels)
	}

	return out
}

// ensureEndsWithHotelReturn makes the hotel return the day's final
// entry. An existing return elsewhere in the plan is moved to the end
// rather than duplicated; only when none exists at all is a synthesized
// one appended.
func ensureEndsWithHotelReturn(plan []plan_models.PlanItem, hotels []plan_models.Hotel) []plan_models.PlanItem {
	if IsHotelReturn(plan[len(plan)-1]) {
		return plan
	}
	for i, item := range plan {
		if IsHotelReturn(item) {
			out := append(plan[:i:i], plan[i+1:]...)
			return append(out, item)
		}
	}
	return append(plan, synthesizedHotelReturn(hotels))
}

// trimActivities keeps the first maxActivities attraction entries and
// every logistics entry, then re-sorts by normalized time. Entries with
// unparseable times anchor to their nearest preceding parseable time so
// the sort stays stable for them.
func trimActivities(plan []plan_models.PlanItem, maxActivities int) []plan_models.PlanItem {
	kept := make([]plan_models.PlanItem, 0, len(plan))
	activities := 0
	for _, item := range plan {
		if Classify(item).IsLogistics() {
			kept = append(kept, item)
			continue
		}
		if activities < maxActivities {
			kept = append(kept, item)
			activities++
		}
	}
	return resortByTime(kept)
}

func resortByTime(plan []plan_models.PlanItem) []plan_models.PlanItem {
	type slot struct {
		item   plan_models.PlanItem
		minute int
	}
	slots := make([]slot, len(plan))
	last := 0
	for i, item := range plan {
		if m, ok := MinuteOfDay(item.Time); ok {
			last = m
		}
		slots[i] = slot{item: item, minute: last}
	}
	sort.SliceStable(slots, func(a, b int) bool {
		return slots[a].minute < slots[b].minute
	})
	out := make([]plan_models.PlanItem, len(slots))
	for i, s := range slots {
		out[i] = s.item
	}
	return out
}

func synthesizedHotelReturn(hotels []plan_models.Hotel) plan_models.PlanItem {
	details := "Wind down and head back to the hotel for the night."
	if len(hotels) > 0 && hotels[0].HotelName != "" {
		details = fmt.Sprintf("Wind down and head back to %s for the night.", hotels[0].HotelName)
	}
	return plan_models.PlanItem{
		Time:          synthesizedReturnTime,
		PlaceName:     "Return to hotel",
		PlaceDetails:  details,
		TicketPricing: "Free",
		TimeTravel:    "30 minutes",
	}
}
