package validation

import (
	"math"
	"sort"

	"tripcheck/internal/models/plan_models"
)

// Tolerance constants for the cost checks. Exposed for the test suite;
// values carry over from the original product rules and should not be
// retuned without guidance.
const (
	// BudgetTolerancePct downgrades a budget overage to a warning while
	// totalCost stays within this fraction above userBudget. Itemized
	// real-world prices rarely round to a stated ceiling exactly.
	BudgetTolerancePct = 0.05

	// SubtotalSlack is the rounding tolerance, in currency units, for a
	// day's component sum against its declared subtotal.
	SubtotalSlack = 1.0

	// GrandTotalSlack is the allowed gap, in currency units, between the
	// grand total and the sum of daily subtotals before the gap becomes
	// an error. Loose on purpose: incidental fees land here.
	GrandTotalSlack = 100.0

	// RepeatPriceThreshold flags any price value recurring this many
	// times across the document.
	RepeatPriceThreshold = 5

	// RoundPriceThreshold flags a suspicious round number recurring this
	// many times.
	RoundPriceThreshold = 3
)

// BudgetReconciler validates declared cost breakdowns and flags
// placeholder-looking pricing against the reference price book.
type BudgetReconciler struct {
	prices *PriceBook
}

func NewBudgetReconciler(prices *PriceBook) *BudgetReconciler {
	if prices == nil {
		prices = NewPriceBook()
	}
	return &BudgetReconciler{prices: prices}
}

// Reconcile runs every cost check independently; a failed check never
// short-circuits the rest, so the returned slices describe the whole
// document. When the document carries no budget data at all the checks
// are skipped behind a single warning.
func (r *BudgetReconciler) Reconcile(doc plan_models.Itinerary, accommodationTier string) (errs []Issue, warnings []Issue) {
	if doc.BudgetCompliance == nil && len(doc.DailyCosts) == 0 && doc.GrandTotal == 0 {
		warnings = append(warnings, newIssue(CodeBudgetDataMissing, 0,
			"itinerary carries no budget data; cost checks skipped"))
		return errs, warnings
	}

	errs, warnings = r.checkCompliance(doc, errs, warnings)
	errs = r.checkSubtotals(doc, errs)
	errs, warnings = r.checkGrandTotal(doc, errs, warnings)
	warnings = r.checkRealism(doc, warnings)
	warnings = r.checkReferenceRanges(doc, accommodationTier, warnings)

	if len(doc.MissingPrices) > 0 {
		warnings = append(warnings, newIssue(CodeMissingPrices, 0,
			"%d places have no researched price and were costed as estimates", len(doc.MissingPrices)))
	}

	return errs, warnings
}

func (r *BudgetReconciler) checkCompliance(doc plan_models.Itinerary, errs, warnings []Issue) ([]Issue, []Issue) {
	bc := doc.BudgetCompliance
	if bc == nil {
		errs = append(errs, newIssue(CodeBudgetFieldInvalid, 0,
			"budgetCompliance object is missing"))
		return errs, warnings
	}
	if bc.UserBudget <= 0 {
		errs = append(errs, newIssue(CodeBudgetFieldInvalid, 0,
			"budgetCompliance.userBudget must be a positive amount, got %.2f", bc.UserBudget))
		return errs, warnings
	}

	tolerance := math.Round(bc.UserBudget * BudgetTolerancePct)
	switch {
	case bc.TotalCost > bc.UserBudget+tolerance:
		errs = append(errs, newIssue(CodeBudgetExceeded, 0,
			"total cost %.2f exceeds budget %.2f beyond the %.0f tolerance", bc.TotalCost, bc.UserBudget, tolerance))
	case bc.TotalCost > bc.UserBudget:
		warnings = append(warnings, newIssue(CodeBudgetNearLimit, 0,
			"total cost %.2f is over budget %.2f but within the %.0f tolerance", bc.TotalCost, bc.UserBudget, tolerance))
	}

	if math.Abs(bc.Remaining-(bc.UserBudget-bc.TotalCost)) > SubtotalSlack {
		warnings = append(warnings, newIssue(CodeBudgetFieldInvalid, 0,
			"budgetCompliance.remaining %.2f disagrees with userBudget-totalCost %.2f", bc.Remaining, bc.UserBudget-bc.TotalCost))
	}
	if !bc.WithinBudget && bc.TotalCost <= bc.UserBudget {
		warnings = append(warnings, newIssue(CodeBudgetFieldInvalid, 0,
			"withinBudget flag is false but total cost %.2f does not exceed budget %.2f", bc.TotalCost, bc.UserBudget))
	}
	if bc.WithinBudget && bc.TotalCost > bc.UserBudget+tolerance {
		warnings = append(warnings, newIssue(CodeBudgetFieldInvalid, 0,
			"withinBudget flag is true but total cost %.2f exceeds budget %.2f beyond tolerance", bc.TotalCost, bc.UserBudget))
	}

	return errs, warnings
}

func (r *BudgetReconciler) checkSubtotals(doc plan_models.Itinerary, errs []Issue) []Issue {
	for _, dc := range doc.DailyCosts {
		b := dc.Breakdown
		sum := b.Accommodation + b.Meals + b.Activities + b.Transport
		if math.Abs(sum-b.Subtotal) > SubtotalSlack {
			errs = append(errs, newIssue(CodeSubtotalMismatch, dc.Day,
				"day %d components sum to %.2f but subtotal declares %.2f", dc.Day, sum, b.Subtotal))
		}
	}
	return errs
}

func (r *BudgetReconciler) checkGrandTotal(doc plan_models.Itinerary, errs, warnings []Issue) ([]Issue, []Issue) {
	if len(doc.DailyCosts) == 0 {
		return errs, warnings
	}
	var sum float64
	for _, dc := range doc.DailyCosts {
		sum += dc.Breakdown.Subtotal
	}
	gap := math.Abs(doc.GrandTotal - sum)
	switch {
	case gap > GrandTotalSlack:
		errs = append(errs, newIssue(CodeGrandTotalMismatch, 0,
			"grand total %.2f is %.2f away from the %.2f sum of daily subtotals", doc.GrandTotal, gap, sum))
	case gap >= SubtotalSlack:
		warnings = append(warnings, newIssue(CodeGrandTotalDrift, 0,
			"grand total %.2f drifts %.2f from the sum of daily subtotals", doc.GrandTotal, gap))
	}
	return errs, warnings
}

// checkRealism looks for the statistical fingerprints of hallucinated
// pricing: one value recurring across many unrelated entries, or round
// placeholder numbers repeated a few times.
func (r *BudgetReconciler) checkRealism(doc plan_models.Itinerary, warnings []Issue) []Issue {
	counts := collectPriceCounts(doc)

	values := make([]float64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Float64s(values)

	flagged := make(map[float64]bool, len(values))
	for _, v := range values {
		if counts[v] >= RepeatPriceThreshold {
			flagged[v] = true
			warnings = append(warnings, newIssue(CodeRepeatedPrice, 0,
				"price %.2f appears %d times across the itinerary; likely a placeholder", v, counts[v]))
		}
	}
	for _, v := range SuspiciousRoundPrices {
		if flagged[v] {
			continue
		}
		if counts[v] >= RoundPriceThreshold {
			warnings = append(warnings, newIssue(CodeSuspiciousRoundPrice, 0,
				"round price %.0f appears %d times; likely estimated rather than researched", v, counts[v]))
		}
	}
	return warnings
}

func (r *BudgetReconciler) checkReferenceRanges(doc plan_models.Itinerary, tier string, warnings []Issue) []Issue {
	nightly := r.prices.NightlyRange(tier, doc.Destination)
	meals := r.prices.MealRange(tier, doc.Destination)

	for _, dc := range doc.DailyCosts {
		b := dc.Breakdown
		if b.Accommodation > 0 && b.Accommodation < nightly.Min/2 {
			warnings = append(warnings, newIssue(CodePriceBelowRange, dc.Day,
				"day %d accommodation %.2f is far below the %.0f minimum expected for %s stays in %s",
				dc.Day, b.Accommodation, nightly.Min, NormalizeTier(tier), doc.Destination))
		}
		if b.Meals > 0 && b.Meals < meals.Min/2 {
			warnings = append(warnings, newIssue(CodePriceBelowRange, dc.Day,
				"day %d meals %.2f is far below the %.0f minimum expected for %s dining in %s",
				dc.Day, b.Meals, meals.Min, NormalizeTier(tier), doc.Destination))
		}
	}
	return warnings
}

func collectPriceCounts(doc plan_models.Itinerary) map[float64]int {
	counts := make(map[float64]int)
	add := func(v float64) {
		if v > 0 {
			counts[v]++
		}
	}

	for _, day := range doc.Itinerary {
		for _, item := range day.Plan {
			if v, ok := ParsePrice(item.TicketPricing); ok {
				add(v)
			}
		}
	}
	for _, place := range doc.PlacesToVisit {
		if v, ok := ParsePrice(place.TicketPricing); ok {
			add(v)
		}
	}
	for _, hotel := range doc.Hotels {
		if v, ok := ParsePrice(hotel.Price); ok {
			add(v)
		}
	}
	for _, dc := range doc.DailyCosts {
		add(dc.Breakdown.Accommodation)
		add(dc.Breakdown.Meals)
		add(dc.Breakdown.Activities)
		add(dc.Breakdown.Transport)
	}
	return counts
}
