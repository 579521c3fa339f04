package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrTripNotFound           = errors.New("trip not found")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrItineraryRejected      = errors.New("itinerary rejected by validation")
	ErrReportNotFound         = errors.New("validation report not found")
)
