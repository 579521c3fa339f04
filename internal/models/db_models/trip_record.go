package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TripRecord is a validated itinerary persisted for a user. Document is
// the full corrected itinerary JSON as returned to the client; summary
// columns exist so listings never unmarshal the blob.
type TripRecord struct {
	BaseModel
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	TripName           string    `gorm:"size:255"`
	Destination        string    `gorm:"size:255;index"`
	DurationDays       int
	ActivityPreference int
	AccommodationTier  string         `gorm:"size:16"`
	Document           string         `gorm:"type:jsonb"`
	PlacesToVisit      pq.StringArray `gorm:"type:text[]"`
	MissingPrices      pq.StringArray `gorm:"type:text[]"`
	WarningCount       int
	GrandTotal         float64
	UserBudget         float64
}

func (TripRecord) TableName() string {
	return "trips"
}
