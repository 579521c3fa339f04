package request_models

import "tripcheck/internal/models/plan_models"

// GenerateTripRequest asks the service to plan and validate a new trip.
type GenerateTripRequest struct {
	Destination        string  `json:"destination" binding:"required"`
	DurationDays       int     `json:"duration_days" binding:"required,min=1,max=14"`
	ActivityPreference int     `json:"activity_preference" binding:"omitempty,min=1,max=4"`
	AccommodationTier  string  `json:"accommodation_tier"`
	UserBudget         float64 `json:"user_budget" binding:"omitempty,gt=0"`
	Currency           string  `json:"currency"`
	Travelers          int     `json:"travelers" binding:"omitempty,min=1"`
}

// ValidateItineraryRequest carries an externally produced itinerary
// through the same validation pipeline without persisting anything.
type ValidateItineraryRequest struct {
	Itinerary          plan_models.Itinerary `json:"itinerary" binding:"required"`
	ActivityPreference int                   `json:"activity_preference" binding:"omitempty,min=1,max=4"`
	DurationDays       int                   `json:"duration_days" binding:"omitempty,min=1,max=14"`
	AccommodationTier  string                `json:"accommodation_tier"`
}
