package validation_fx

import (
	"go.uber.org/fx"
	"tripcheck/internal/validation"
	mem "tripcheck/pkg/memcache"
)

var Module = fx.Provide(
	providePriceBook,
	provideReconciler,
	provideValidator,
	provideReportCache)

func providePriceBook() *validation.PriceBook {
	return validation.NewPriceBook()
}

func provideReconciler(prices *validation.PriceBook) *validation.BudgetReconciler {
	return validation.NewBudgetReconciler(prices)
}

func provideValidator(reconciler *validation.BudgetReconciler) *validation.ItineraryValidator {
	return validation.NewItineraryValidator(reconciler)
}

func provideReportCache() mem.ReportStore {
	return mem.NewReportCache()
}
