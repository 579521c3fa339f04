package validation

import (
	"log"

	"tripcheck/internal/models/plan_models"
)

// Preferences is the slice of user preferences the validation pipeline
// consumes. DurationDays is what the user asked for; the day list in the
// document stays authoritative for role resolution.
type Preferences struct {
	ActivityPreference int
	DurationDays       int
	AccommodationTier  string
}

// ItineraryValidator orchestrates the checks over a single document:
// structural, then count, then budget, with no early exit so one pass
// yields the complete report.
type ItineraryValidator struct {
	reconciler *BudgetReconciler
}

func NewItineraryValidator(reconciler *BudgetReconciler) *ItineraryValidator {
	if reconciler == nil {
		reconciler = NewBudgetReconciler(nil)
	}
	return &ItineraryValidator{reconciler: reconciler}
}

// Process runs the full repair-and-validate pipeline:
// dedupe -> autofix -> validate. Each stage takes the previous stage's
// output and returns a fresh document, so the caller's copy is never
// touched. A panic from a hopelessly malformed document is converted
// into a single structural error instead of escaping.
func (v *ItineraryValidator) Process(doc plan_models.Itinerary, prefs Preferences) (report Report) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("validation pipeline recovered: %v", rec)
			report = Report{
				Document: doc,
				ValidationResult: ValidationResult{
					IsValid: false,
					Errors: []Issue{newIssue(CodeUnreadableDocument, 0,
						"itinerary document could not be interpreted: %v", rec)},
					Warnings: []Issue{},
				},
			}
		}
	}()

	deduped := DedupeItinerary(doc)
	fixed := FixItinerary(deduped, prefs.ActivityPreference)
	return v.Validate(fixed, prefs)
}

// Validate runs the structural, count and budget checks over an
// already-corrected document and aggregates every finding into one
// report. Warnings never flip the terminal state; any error does.
func (v *ItineraryValidator) Validate(doc plan_models.Itinerary, prefs Preferences) Report {
	errs := []Issue{}
	warnings := []Issue{}

	e, w := v.structuralCheck(doc, prefs)
	errs = append(errs, e...)
	warnings = append(warnings, w...)

	errs = append(errs, v.countCheck(doc, prefs)...)

	e, w = v.reconciler.Reconcile(doc, prefs.AccommodationTier)
	errs = append(errs, e...)
	warnings = append(warnings, w...)

	return Report{
		Document: doc,
		ValidationResult: ValidationResult{
			IsValid:  len(errs) == 0,
			Errors:   errs,
			Warnings: warnings,
		},
	}
}

// structuralCheck enforces the parts of the contract the fixer does not
// repair: day 1 opens with a hotel check-in, the last day contains a
// check-out, and every middle day ends with a hotel return. The fixer
// only synthesizes returns; missing check-ins and check-outs are hard
// errors because they need data only the planner has.
func (v *ItineraryValidator) structuralCheck(doc plan_models.Itinerary, prefs Preferences) (errs []Issue, warnings []Issue) {
	days := doc.Itinerary
	if len(days) == 0 {
		errs = append(errs, newIssue(CodeEmptyItinerary, 0, "itinerary has no days"))
		return errs, warnings
	}

	if prefs.DurationDays > 0 && prefs.DurationDays != len(days) {
		warnings = append(warnings, newIssue(CodeDayCountMismatch, 0,
			"requested %d days but the itinerary has %d", prefs.DurationDays, len(days)))
	}

	for i, day := range days {
		if len(day.Plan) == 0 {
			errs = append(errs, newIssue(CodeMalformedDay, i+1, "day %d has an empty plan", i+1))
		}
	}

	if first := days[0]; len(first.Plan) > 0 {
		if !IsCheckIn(first.Plan[0]) {
			errs = append(errs, newIssue(CodeMissingCheckIn, 1,
				"day 1 must begin with a hotel check-in, found %q", first.Plan[0].PlaceName))
		}
	}

	if last := days[len(days)-1]; len(last.Plan) > 0 {
		found := false
		for _, item := range last.Plan {
			if IsCheckOut(item) {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, newIssue(CodeMissingCheckOut, len(days),
				"day %d must contain a hotel check-out", len(days)))
		}
	}

	for i, day := range days {
		if ResolveRole(i, len(days)) != RoleMiddle || len(day.Plan) == 0 {
			continue
		}
		if !IsHotelReturn(day.Plan[len(day.Plan)-1]) {
			errs = append(errs, newIssue(CodeMissingHotelReturn, i+1,
				"day %d must end with a return to the hotel", i+1))
		}
	}

	return errs, warnings
}

// countCheck verifies every day's classified activity count sits inside
// the role's window. The fixer runs first, so a violation here means a
// day the fixer skipped or a fixer defect, not a retryable model fault.
func (v *ItineraryValidator) countCheck(doc plan_models.Itinerary, prefs Preferences) []Issue {
	var errs []Issue
	total := len(doc.Itinerary)
	for i, day := range doc.Itinerary {
		if len(day.Plan) == 0 {
			continue // already flagged as malformed
		}
		role := ResolveRole(i, total)
		limits := ConstraintsFor(role, prefs.ActivityPreference)
		count := ClassifyDay(day.Plan).ActivityCount
		if count < limits.Min || count > limits.Max {
			errs = append(errs, newIssue(CodeActivityCount, i+1,
				"day %d (%s) has %d activities, allowed range is %d-%d",
				i+1, role, count, limits.Min, limits.Max))
		}
	}
	return errs
}
