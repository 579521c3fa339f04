package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcheck/internal/models/plan_models"
)

func budgetDoc(userBudget, totalCost float64) plan_models.Itinerary {
	return plan_models.Itinerary{
		Destination: "Cebu, Philippines",
		BudgetCompliance: &plan_models.BudgetCompliance{
			UserBudget:   userBudget,
			TotalCost:    totalCost,
			Remaining:    userBudget - totalCost,
			WithinBudget: totalCost <= userBudget,
		},
	}
}

func TestReconcileBudgetToleranceBoundary(t *testing.T) {
	r := NewBudgetReconciler(nil)

	// 10000 * 5% = 500 tolerance; 10500 is the last warning-only value
	errs, warnings := r.Reconcile(budgetDoc(10000, 10500), TierStandard)
	assert.Empty(t, errs)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeBudgetNearLimit, warnings[0].Code)

	errs, warnings = r.Reconcile(budgetDoc(10000, 10501), TierStandard)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeBudgetExceeded, errs[0].Code)
	assert.Empty(t, warnings)
}

func TestReconcileWithinBudgetIsClean(t *testing.T) {
	r := NewBudgetReconciler(nil)
	errs, warnings := r.Reconcile(budgetDoc(10000, 8000), TierStandard)
	assert.Empty(t, errs)
	assert.Empty(t, warnings)
}

func TestReconcileInvalidBudgetFields(t *testing.T) {
	r := NewBudgetReconciler(nil)

	doc := budgetDoc(0, 5000)
	errs, _ := r.Reconcile(doc, TierStandard)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeBudgetFieldInvalid, errs[0].Code)

	doc = budgetDoc(10000, 8000)
	doc.BudgetCompliance.Remaining = 999
	_, warnings := r.Reconcile(doc, TierStandard)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeBudgetFieldInvalid, warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "remaining")
}

func TestReconcileSubtotalMismatch(t *testing.T) {
	doc := budgetDoc(10000, 5100)
	doc.DailyCosts = []plan_models.DailyCost{
		{Day: 2, Breakdown: plan_models.CostBreakdown{
			Accommodation: 3000, Meals: 1000, Activities: 550, Transport: 450,
			Subtotal: 5100,
		}},
	}
	doc.GrandTotal = 5100

	r := NewBudgetReconciler(nil)
	errs, warnings := r.Reconcile(doc, TierStandard)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeSubtotalMismatch, errs[0].Code)
	assert.Equal(t, 2, errs[0].Day)
	assert.Empty(t, warnings)
}

func TestReconcileGrandTotalBands(t *testing.T) {
	build := func(grandTotal float64) plan_models.Itinerary {
		doc := budgetDoc(10000, grandTotal)
		doc.DailyCosts = []plan_models.DailyCost{
			{Day: 1, Breakdown: plan_models.CostBreakdown{
				Accommodation: 1300, Meals: 510, Activities: 140, Transport: 50, Subtotal: 2000,
			}},
			{Day: 2, Breakdown: plan_models.CostBreakdown{
				Accommodation: 1310, Meals: 520, Activities: 90, Transport: 80, Subtotal: 2000,
			}},
		}
		doc.GrandTotal = grandTotal
		return doc
	}
	r := NewBudgetReconciler(nil)

	errs, warnings := r.Reconcile(build(4150), TierStandard)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeGrandTotalMismatch, errs[0].Code)
	assert.Empty(t, warnings)

	errs, warnings = r.Reconcile(build(4050), TierStandard)
	assert.Empty(t, errs)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeGrandTotalDrift, warnings[0].Code)

	errs, warnings = r.Reconcile(build(4000.5), TierStandard)
	assert.Empty(t, errs)
	assert.Empty(t, warnings)
}

func TestReconcileFlagsRepeatedPrice(t *testing.T) {
	doc := budgetDoc(10000, 8000)
	var plan []plan_models.PlanItem
	for _, name := range []string{"Fort Santiago", "Casa Manila", "Ocean Park", "Museum", "Planetarium"} {
		plan = append(plan, plan_models.PlanItem{PlaceName: name, TicketPricing: "PHP 500"})
	}
	doc.Itinerary = []plan_models.Day{{Day: 1, Plan: plan}}

	r := NewBudgetReconciler(nil)
	errs, warnings := r.Reconcile(doc, TierStandard)
	assert.Empty(t, errs)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeRepeatedPrice, warnings[0].Code)
	// 500 is also a round number but must not be double-flagged
	for _, w := range warnings {
		assert.NotEqual(t, CodeSuspiciousRoundPrice, w.Code)
	}
}

func TestReconcileFlagsSuspiciousRoundPrice(t *testing.T) {
	doc := budgetDoc(10000, 8000)
	doc.Itinerary = []plan_models.Day{{Day: 1, Plan: []plan_models.PlanItem{
		{PlaceName: "Fort Santiago", TicketPricing: "PHP 200"},
		{PlaceName: "Casa Manila", TicketPricing: "₱200"},
		{PlaceName: "Ocean Park", TicketPricing: "200 per head"},
	}}}

	r := NewBudgetReconciler(nil)
	_, warnings := r.Reconcile(doc, TierStandard)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeSuspiciousRoundPrice, warnings[0].Code)
}

func TestReconcilePriceBelowReferenceRange(t *testing.T) {
	doc := budgetDoc(10000, 650)
	doc.DailyCosts = []plan_models.DailyCost{
		{Day: 1, Breakdown: plan_models.CostBreakdown{
			// standard tier in Cebu expects at least 2500/night
			Accommodation: 300, Meals: 150, Activities: 120, Transport: 80, Subtotal: 650,
		}},
	}
	doc.GrandTotal = 650

	r := NewBudgetReconciler(nil)
	errs, warnings := r.Reconcile(doc, TierStandard)
	assert.Empty(t, errs)
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, CodePriceBelowRange, w.Code)
		assert.Equal(t, 1, w.Day)
	}
}

func TestReconcileMissingBudgetDataIsSingleWarning(t *testing.T) {
	doc := plan_models.Itinerary{
		Destination: "Cebu, Philippines",
		Itinerary: []plan_models.Day{{Day: 1, Plan: []plan_models.PlanItem{
			timedItem("10:00", "Fort Santiago", ""),
		}}},
	}

	r := NewBudgetReconciler(nil)
	errs, warnings := r.Reconcile(doc, TierStandard)
	assert.Empty(t, errs)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeBudgetDataMissing, warnings[0].Code)
}

func TestReconcileMissingPricesWarning(t *testing.T) {
	doc := budgetDoc(10000, 8000)
	doc.MissingPrices = []string{"Casa Manila", "Ocean Park"}

	r := NewBudgetReconciler(nil)
	_, warnings := r.Reconcile(doc, TierStandard)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeMissingPrices, warnings[0].Code)
}
