package validation

import (
	"fmt"

	"tripcheck/internal/models/plan_models"
)

// Issue codes. Structural and count codes always block persistence;
// the rest depend on the severity slice they land in.
const (
	CodeEmptyItinerary     = "EMPTY_ITINERARY"
	CodeMalformedDay       = "MALFORMED_DAY"
	CodeMissingCheckIn     = "MISSING_CHECK_IN"
	CodeMissingCheckOut    = "MISSING_CHECK_OUT"
	CodeMissingHotelReturn = "MISSING_HOTEL_RETURN"
	CodeDayCountMismatch   = "DAY_COUNT_MISMATCH"
	CodeUnreadableDocument = "UNREADABLE_DOCUMENT"

	CodeActivityCount = "ACTIVITY_COUNT_OUT_OF_RANGE"

	CodeBudgetDataMissing    = "BUDGET_DATA_MISSING"
	CodeBudgetFieldInvalid   = "BUDGET_FIELD_INVALID"
	CodeBudgetExceeded       = "BUDGET_EXCEEDED"
	CodeBudgetNearLimit      = "BUDGET_NEAR_LIMIT"
	CodeSubtotalMismatch     = "SUBTOTAL_MISMATCH"
	CodeGrandTotalMismatch   = "GRAND_TOTAL_MISMATCH"
	CodeGrandTotalDrift      = "GRAND_TOTAL_DRIFT"
	CodeRepeatedPrice        = "REPEATED_PRICE"
	CodeSuspiciousRoundPrice = "SUSPICIOUS_ROUND_PRICE"
	CodePriceBelowRange      = "PRICE_BELOW_RANGE"
	CodeMissingPrices        = "MISSING_PRICES"
)

// Issue is one validation finding. Day is 1-based and zero when the
// finding is not tied to a specific day.
type Issue struct {
	Code    string `json:"code"`
	Day     int    `json:"day,omitempty"`
	Message string `json:"message"`
}

func newIssue(code string, day int, format string, args ...any) Issue {
	return Issue{Code: code, Day: day, Message: fmt.Sprintf(format, args...)}
}

// ValidationResult is produced fresh per validation call and never
// mutated after return.
type ValidationResult struct {
	IsValid  bool    `json:"isValid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Report pairs the (possibly auto-corrected) document with its result.
// Callers block persistence on errors and proceed with notice on warnings.
type Report struct {
	Document plan_models.Itinerary `json:"document"`
	ValidationResult
}
