package response_models

import (
	"tripcheck/internal/models/plan_models"
	"tripcheck/internal/validation"
)

// TripResponse is the payload for a freshly generated or fetched trip.
type TripResponse struct {
	ID       string                `json:"id,omitempty"`
	Saved    bool                  `json:"saved"`
	Document plan_models.Itinerary `json:"document"`
	IsValid  bool                  `json:"isValid"`
	Errors   []validation.Issue    `json:"errors"`
	Warnings []validation.Issue    `json:"warnings"`
}

// TripSummary is the listing shape; the full document stays in the blob.
type TripSummary struct {
	ID           string  `json:"id"`
	TripName     string  `json:"tripName"`
	Destination  string  `json:"destination"`
	DurationDays int     `json:"durationDays"`
	GrandTotal   float64 `json:"grandTotal"`
	WarningCount int     `json:"warningCount"`
	CreatedAt    int64   `json:"createdAt"`
}
