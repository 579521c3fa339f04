package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcheck/internal/models/plan_models"
)

func validDoc() plan_models.Itinerary {
	return plan_models.Itinerary{
		TripName:     "Manila Heritage Weekend",
		Destination:  "Manila, Philippines",
		DurationDays: 3,
		Hotels:       []plan_models.Hotel{{HotelName: "Bayfront Hotel"}},
		Itinerary: []plan_models.Day{
			{Day: 1, Plan: []plan_models.PlanItem{
				timedItem("14:00", "Check-in at Bayfront Hotel", ""),
				timedItem("15:00", "Intramuros Walking Tour", ""),
				timedItem("19:00", "Dinner at Barbara's", ""),
			}},
			{Day: 2, Plan: []plan_models.PlanItem{
				timedItem("09:00", "National Museum", ""),
				timedItem("12:00", "Lunch at Aristocrat", ""),
				timedItem("14:00", "Rizal Park", ""),
				timedItem("20:00", "Return to hotel", ""),
			}},
			{Day: 3, Plan: []plan_models.PlanItem{
				timedItem("09:00", "Binondo Food Walk", ""),
				timedItem("12:00", "Check-out of Bayfront Hotel", ""),
			}},
		},
	}
}

func defaultPrefs() Preferences {
	return Preferences{ActivityPreference: 2, DurationDays: 3, AccommodationTier: TierStandard}
}

func TestValidateCleanDocument(t *testing.T) {
	v := NewItineraryValidator(nil)
	report := v.Validate(validDoc(), defaultPrefs())

	assert.True(t, report.IsValid)
	assert.NotNil(t, report.Errors)
	assert.Empty(t, report.Errors)

	// no cost data only downgrades, never blocks
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, CodeBudgetDataMissing, report.Warnings[0].Code)
}

func TestValidateMissingCheckIn(t *testing.T) {
	doc := validDoc()
	doc.Itinerary[0].Plan = []plan_models.PlanItem{
		timedItem("15:00", "Intramuros Walking Tour", ""),
		timedItem("19:00", "Dinner at Barbara's", ""),
	}

	v := NewItineraryValidator(nil)
	report := v.Validate(doc, defaultPrefs())

	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, CodeMissingCheckIn, report.Errors[0].Code)
	assert.Equal(t, 1, report.Errors[0].Day)
	assert.Contains(t, report.Errors[0].Message, "Intramuros Walking Tour")
}

func TestValidateMissingCheckOut(t *testing.T) {
	doc := validDoc()
	doc.Itinerary[2].Plan = []plan_models.PlanItem{
		timedItem("09:00", "Binondo Food Walk", ""),
	}

	v := NewItineraryValidator(nil)
	report := v.Validate(doc, defaultPrefs())

	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, CodeMissingCheckOut, report.Errors[0].Code)
	assert.Equal(t, 3, report.Errors[0].Day)
}

func TestValidateMiddleDayWithoutReturn(t *testing.T) {
	doc := validDoc()
	doc.Itinerary[1].Plan = doc.Itinerary[1].Plan[:3]

	v := NewItineraryValidator(nil)
	report := v.Validate(doc, defaultPrefs())

	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, CodeMissingHotelReturn, report.Errors[0].Code)
	assert.Equal(t, 2, report.Errors[0].Day)
}

func TestValidateEmptyItinerary(t *testing.T) {
	v := NewItineraryValidator(nil)
	report := v.Validate(plan_models.Itinerary{}, defaultPrefs())

	assert.False(t, report.IsValid)
	require.NotEmpty(t, report.Errors)
	assert.Equal(t, CodeEmptyItinerary, report.Errors[0].Code)
}

func TestValidateDayCountMismatchIsWarning(t *testing.T) {
	prefs := defaultPrefs()
	prefs.DurationDays = 4

	v := NewItineraryValidator(nil)
	report := v.Validate(validDoc(), prefs)

	assert.True(t, report.IsValid)
	codes := make([]string, 0, len(report.Warnings))
	for _, w := range report.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, CodeDayCountMismatch)
}

func TestValidateActivityCountOutOfRange(t *testing.T) {
	doc := validDoc()
	// middle day stripped to logistics only: below the pace-2 minimum of 1
	doc.Itinerary[1].Plan = []plan_models.PlanItem{
		timedItem("12:00", "Lunch at Aristocrat", ""),
		timedItem("20:00", "Return to hotel", ""),
	}

	v := NewItineraryValidator(nil)
	report := v.Validate(doc, defaultPrefs())

	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, CodeActivityCount, report.Errors[0].Code)
	assert.Equal(t, 2, report.Errors[0].Day)
}

func TestValidateCollectsAllFindingsInOnePass(t *testing.T) {
	doc := validDoc()
	doc.Itinerary[0].Plan[0] = timedItem("14:00", "Manila Ocean Park", "")
	doc.Itinerary[1].Plan = doc.Itinerary[1].Plan[:3]
	doc.BudgetCompliance = &plan_models.BudgetCompliance{
		UserBudget: 10000, TotalCost: 12000, Remaining: -2000, WithinBudget: false,
	}

	v := NewItineraryValidator(nil)
	report := v.Validate(doc, defaultPrefs())

	codes := make([]string, 0, len(report.Errors))
	for _, e := range report.Errors {
		codes = append(codes, e.Code)
	}
	assert.Contains(t, codes, CodeMissingCheckIn)
	assert.Contains(t, codes, CodeMissingHotelReturn)
	assert.Contains(t, codes, CodeBudgetExceeded)
}

func TestProcessRepairsBeforeValidating(t *testing.T) {
	doc := validDoc()
	day2 := &doc.Itinerary[1]
	day2.Plan = []plan_models.PlanItem{
		timedItem("09:00", "National Museum", ""),
		timedItem("10:30", "Fort Santiago", ""),
		timedItem("12:00", "Lunch at Aristocrat", ""),
		timedItem("13:30", "Casa Manila", ""),
		timedItem("15:00", "San Agustin Church", ""),
		timedItem("16:30", "Manila Cathedral", ""),
		timedItem("20:00", "Return to hotel", "early"),
		timedItem("20:15", "Back to hotel", "wind down for the night"),
	}

	v := NewItineraryValidator(nil)
	report := v.Process(doc, defaultPrefs())

	assert.True(t, report.IsValid, "errors: %v", report.Errors)

	plan := report.Document.Itinerary[1].Plan
	part := ClassifyDay(plan)
	assert.LessOrEqual(t, part.ActivityCount, 3)

	returns := 0
	for _, it := range plan {
		if IsHotelReturn(it) {
			returns++
		}
	}
	assert.Equal(t, 1, returns)
	assert.True(t, IsHotelReturn(plan[len(plan)-1]))

	// the caller's document is untouched
	assert.Len(t, doc.Itinerary[1].Plan, 8)
}

func TestProcessIdempotent(t *testing.T) {
	v := NewItineraryValidator(nil)
	first := v.Process(validDoc(), defaultPrefs())
	second := v.Process(first.Document, defaultPrefs())
	assert.Equal(t, first, second)
}

func TestProcessRecoversPanics(t *testing.T) {
	doc := validDoc()
	doc.BudgetCompliance = &plan_models.BudgetCompliance{UserBudget: 10000, TotalCost: 8000, Remaining: 2000, WithinBudget: true}

	// zero-value validator has no reconciler and panics mid-pipeline
	v := &ItineraryValidator{}
	var report Report
	require.NotPanics(t, func() {
		report = v.Process(doc, defaultPrefs())
	})

	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, CodeUnreadableDocument, report.Errors[0].Code)
}
