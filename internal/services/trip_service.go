package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripcheck/internal/models/db_models"
	"tripcheck/internal/models/plan_models"
	"tripcheck/internal/models/request_models"
	"tripcheck/internal/models/response_models"
	"tripcheck/internal/repositories"
	"tripcheck/internal/validation"
	mem "tripcheck/pkg/memcache"
	"tripcheck/pkg/utils"
)

const (
	defaultActivityPreference = 2
	reportCacheTTL            = 30 * time.Minute
)

type TripServiceInterface interface {
	GenerateTrip(userID string, req request_models.GenerateTripRequest, ctx context.Context) (*response_models.TripResponse, error)
	ValidateItinerary(req request_models.ValidateItineraryRequest, ctx context.Context) (*response_models.TripResponse, error)
	GetTripByID(tripID string, ctx context.Context) (*response_models.TripResponse, error)
	GetTripReport(tripID string, ctx context.Context) (*validation.Report, error)
	ListTripsByUser(userID string, page int, pageSize int, ctx context.Context) ([]response_models.TripSummary, error)
	DeleteTrip(tripID string, userID string, ctx context.Context) error
}

type TripService struct {
	tripRepo  repositories.TripRepositoryInterface
	planner   utils.PlannerClientInterface
	validator *validation.ItineraryValidator
	reports   mem.ReportStore
}

func NewTripService(
	tripRepo repositories.TripRepositoryInterface,
	planner utils.PlannerClientInterface,
	validator *validation.ItineraryValidator,
	reports mem.ReportStore,
) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		planner:   planner,
		validator: validator,
		reports:   reports,
	}
}

// GenerateTrip plans an itinerary with the model, pushes it through the
// repair-and-validate pipeline, and persists it once a pass comes back
// clean. The model gets three attempts; validation findings from the
// previous round are folded into the follow-up prompt so the model can
// correct itself instead of replaying the same mistake.
func (s *TripService) GenerateTrip(userID string, req request_models.GenerateTripRequest, ctx context.Context) (*response_models.TripResponse, error) {
	if strings.TrimSpace(req.Destination) == "" || req.DurationDays < 1 || req.DurationDays > 14 {
		return nil, utils.ErrInvalidInput
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	prefs := validation.Preferences{
		ActivityPreference: req.ActivityPreference,
		DurationDays:       req.DurationDays,
		AccommodationTier:  validation.NormalizeTier(req.AccommodationTier),
	}
	if prefs.ActivityPreference == 0 {
		prefs.ActivityPreference = defaultActivityPreference
	}

	report, err := s.generateValidatedItinerary(ctx, req, prefs)
	if err != nil {
		return nil, err
	}

	resp := reportToResponse(*report, "", false)
	if !report.IsValid {
		return &resp, utils.ErrItineraryRejected
	}

	record, err := buildTripRecord(uid, req, prefs, *report)
	if err != nil {
		log.Printf("Failed to serialize itinerary document: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if err := s.tripRepo.CreateTrip(*record, ctx); err != nil {
		log.Printf("Failed to persist trip: %v", err)
		return nil, utils.ErrDatabaseError
	}

	s.reports.Set(record.ID.String(), *report, reportCacheTTL)

	resp.ID = record.ID.String()
	resp.Saved = true
	return &resp, nil
}

// ValidateItinerary runs a caller-supplied document through the same
// pipeline without persisting anything.
func (s *TripService) ValidateItinerary(req request_models.ValidateItineraryRequest, ctx context.Context) (*response_models.TripResponse, error) {
	if len(req.Itinerary.Itinerary) == 0 && req.Itinerary.TripName == "" {
		return nil, utils.ErrInvalidInput
	}

	prefs := validation.Preferences{
		ActivityPreference: req.ActivityPreference,
		DurationDays:       req.DurationDays,
		AccommodationTier:  validation.NormalizeTier(req.AccommodationTier),
	}
	if prefs.ActivityPreference == 0 {
		prefs.ActivityPreference = defaultActivityPreference
	}
	if prefs.DurationDays == 0 {
		prefs.DurationDays = req.Itinerary.DurationDays
	}

	report := s.validator.Process(req.Itinerary, prefs)
	resp := reportToResponse(report, "", false)
	return &resp, nil
}

func (s *TripService) GetTripByID(tripID string, ctx context.Context) (*response_models.TripResponse, error) {
	record, err := s.tripRepo.GetTripByID(tripID, ctx)
	if err != nil {
		log.Printf("Failed to load trip %s: %v", tripID, err)
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrTripNotFound
	}

	report, err := s.reportForRecord(record)
	if err != nil {
		return nil, err
	}

	resp := reportToResponse(*report, record.ID.String(), true)
	return &resp, nil
}

// GetTripReport returns the full validation report for a stored trip,
// re-deriving it from the stored document when the cache has moved on.
func (s *TripService) GetTripReport(tripID string, ctx context.Context) (*validation.Report, error) {
	if cached, ok := s.reports.Get(tripID); ok {
		return &cached, nil
	}

	record, err := s.tripRepo.GetTripByID(tripID, ctx)
	if err != nil {
		log.Printf("Failed to load trip %s: %v", tripID, err)
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrReportNotFound
	}

	return s.reportForRecord(record)
}

func (s *TripService) ListTripsByUser(userID string, page int, pageSize int, ctx context.Context) ([]response_models.TripSummary, error) {
	records, err := s.tripRepo.GetTripsByUser(userID, page, pageSize, ctx)
	if err != nil {
		log.Printf("Failed to list trips for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, response_models.TripSummary{
			ID:           r.ID.String(),
			TripName:     r.TripName,
			Destination:  r.Destination,
			DurationDays: r.DurationDays,
			GrandTotal:   r.GrandTotal,
			WarningCount: r.WarningCount,
			CreatedAt:    r.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *TripService) DeleteTrip(tripID string, userID string, ctx context.Context) error {
	if err := s.tripRepo.DeleteTrip(tripID, userID, ctx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		log.Printf("Failed to delete trip %s: %v", tripID, err)
		return utils.ErrDatabaseError
	}
	s.reports.Delete(tripID)
	return nil
}

// reportForRecord rebuilds the validation report from a stored document
// and refreshes the cache. Stored trips were valid at persist time, so a
// rebuild yields the same findings as long as the rules have not changed.
func (s *TripService) reportForRecord(record *db_models.TripRecord) (*validation.Report, error) {
	if cached, ok := s.reports.Get(record.ID.String()); ok {
		return &cached, nil
	}

	var doc plan_models.Itinerary
	if err := json.Unmarshal([]byte(record.Document), &doc); err != nil {
		log.Printf("Stored document for trip %s is unreadable: %v", record.ID, err)
		return nil, utils.ErrDatabaseError
	}

	prefs := validation.Preferences{
		ActivityPreference: record.ActivityPreference,
		DurationDays:       record.DurationDays,
		AccommodationTier:  record.AccommodationTier,
	}
	report := s.validator.Validate(doc, prefs)
	s.reports.Set(record.ID.String(), report, reportCacheTTL)
	return &report, nil
}

// generateValidatedItinerary is the retry loop around the planner model.
// Parse failures and validation errors both burn an attempt; the last
// report is returned even when invalid so the caller can surface it.
func (s *TripService) generateValidatedItinerary(ctx context.Context, req request_models.GenerateTripRequest, prefs validation.Preferences) (*validation.Report, error) {
	maxAttempts := 3

	var lastReport *validation.Report
	var lastIssues []validation.Issue

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Printf("Itinerary generation attempt %d/%d for %s (%d days)", attempt, maxAttempts, req.Destination, req.DurationDays)

		prompt := buildItineraryPrompt(req, prefs, lastIssues, attempt == maxAttempts)

		rawJSON, err := s.planner.GenerateItinerary(ctx, prompt)
		if err != nil {
			log.Printf("Attempt %d failed with planner error: %v", attempt, err)
			if attempt == maxAttempts {
				return nil, utils.ErrUnexpectedBehaviorOfAI
			}
			continue
		}

		cleanJSON := fixCommonJSONFaults(utils.CleanJSONResponse(rawJSON))

		var doc plan_models.Itinerary
		if err := json.Unmarshal([]byte(cleanJSON), &doc); err != nil {
			log.Printf("Attempt %d: itinerary JSON did not parse: %v", attempt, err)
			continue
		}

		report := s.validator.Process(doc, prefs)
		if report.IsValid {
			log.Printf("Valid itinerary received on attempt %d (%d warnings)", attempt, len(report.Warnings))
			return &report, nil
		}

		log.Printf("Attempt %d: itinerary failed validation with %d errors", attempt, len(report.Errors))
		lastReport = &report
		lastIssues = report.Errors
	}

	if lastReport == nil {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	return lastReport, nil
}

func buildTripRecord(userID uuid.UUID, req request_models.GenerateTripRequest, prefs validation.Preferences, report validation.Report) (*db_models.TripRecord, error) {
	docJSON, err := json.Marshal(report.Document)
	if err != nil {
		return nil, err
	}

	places := make([]string, 0, len(report.Document.PlacesToVisit))
	for _, p := range report.Document.PlacesToVisit {
		places = append(places, p.PlaceName)
	}

	record := &db_models.TripRecord{
		UserID:             userID,
		TripName:           report.Document.TripName,
		Destination:        report.Document.Destination,
		DurationDays:       len(report.Document.Itinerary),
		ActivityPreference: prefs.ActivityPreference,
		AccommodationTier:  prefs.AccommodationTier,
		Document:           string(docJSON),
		PlacesToVisit:      pq.StringArray(places),
		MissingPrices:      pq.StringArray(report.Document.MissingPrices),
		WarningCount:       len(report.Warnings),
		GrandTotal:         report.Document.GrandTotal,
		UserBudget:         req.UserBudget,
	}
	record.ID = uuid.New()
	return record, nil
}

func reportToResponse(report validation.Report, id string, saved bool) response_models.TripResponse {
	return response_models.TripResponse{
		ID:       id,
		Saved:    saved,
		Document: report.Document,
		IsValid:  report.IsValid,
		Errors:   report.Errors,
		Warnings: report.Warnings,
	}
}

// buildItineraryPrompt assembles the model instruction. The schema block
// mirrors the document struct exactly; key drift here shows up as parse
// failures downstream.
func buildItineraryPrompt(req request_models.GenerateTripRequest, prefs validation.Preferences, priorIssues []validation.Issue, finalAttempt bool) string {
	var prompt strings.Builder

	currency := req.Currency
	if currency == "" {
		currency = "PHP"
	}
	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}

	if finalAttempt {
		prompt.WriteString("=== CRITICAL INSTRUCTIONS ===\n")
		prompt.WriteString(fmt.Sprintf("You MUST create exactly %d days. Do not create %d days or any other number.\n", req.DurationDays, req.DurationDays-1))
		prompt.WriteString("You MUST return valid JSON only. No explanations.\n")
		prompt.WriteString("You MUST use the exact format specified below.\n\n")
	}

	prompt.WriteString(fmt.Sprintf(
		"Create a %d-day travel itinerary for %s for %d traveler(s), %s tier accommodation. Return JSON only, matching this schema exactly:\n",
		req.DurationDays, req.Destination, travelers, prefs.AccommodationTier))

	prompt.WriteString(`{
  "tripName": "string",
  "destination": "string",
  "durationDays": 3,
  "hotels": [
    {"hotelName": "string", "hotelAddress": "string", "price": "PHP 2500 per night", "rating": 4.5, "description": "string", "geoCoordinates": {"lat": 0.0, "lng": 0.0}}
  ],
  "itinerary": [
    {"day": 1, "theme": "string", "plan": [
      {"time": "14:00", "placeName": "string", "placeDetails": "string", "ticketPricing": "PHP 100", "timeTravel": "30 minutes", "geoCoordinates": {"lat": 0.0, "lng": 0.0}}
    ]}
  ],
  "placesToVisit": [
    {"placeName": "string", "placeDetails": "string", "ticketPricing": "PHP 100", "timeToTravel": "30 minutes", "geoCoordinates": {"lat": 0.0, "lng": 0.0}}
  ],
  "dailyCosts": [
    {"day": 1, "breakdown": {"accommodation": 0, "meals": 0, "activities": 0, "transport": 0, "subtotal": 0}}
  ],
  "grandTotal": 0,
  "budgetCompliance": {"userBudget": 0, "totalCost": 0, "remaining": 0, "withinBudget": true},
  "missingPrices": []
}`)

	prompt.WriteString("\n\nHard constraints:\n")
	prompt.WriteString(fmt.Sprintf("- Exactly %d entries in \"itinerary\", day = 1..%d with no gaps.\n", req.DurationDays, req.DurationDays))
	prompt.WriteString("- Day 1 must begin with a hotel check-in entry.\n")
	prompt.WriteString("- The last day must contain a hotel check-out entry.\n")
	if req.DurationDays > 2 {
		prompt.WriteString("- Every day between the first and last must end with a return-to-hotel entry.\n")
	}
	prompt.WriteString(fmt.Sprintf("- Around %d sightseeing activities per full day; arrival and departure days stay light.\n", prefs.ActivityPreference))
	prompt.WriteString(fmt.Sprintf("- All times in HH:MM 24-hour format, ascending within a day. Prices in %s with realistic researched values, never placeholders.\n", currency))
	if req.UserBudget > 0 {
		prompt.WriteString(fmt.Sprintf("- Total cost must stay within the %s %.0f budget; fill budgetCompliance accordingly.\n", currency, req.UserBudget))
	}
	prompt.WriteString("- List any place you could not find a real price for in missingPrices.\n")

	if len(priorIssues) > 0 {
		prompt.WriteString("\nYour previous attempt was rejected for these reasons; fix every one of them:\n")
		for _, issue := range priorIssues {
			prompt.WriteString("- " + issue.Message + "\n")
		}
	}

	prompt.WriteString("\nReturn JSON only. No comments, no markdown.\n")
	return prompt.String()
}

// fixCommonJSONFaults patches the null-vs-empty mistakes planner models
// make most often so unmarshalling does not reject an otherwise good
// document.
func fixCommonJSONFaults(rawJSON string) string {
	rawJSON = strings.TrimSpace(rawJSON)

	rawJSON = strings.ReplaceAll(rawJSON, `"ticketPricing": null`, `"ticketPricing": ""`)
	rawJSON = strings.ReplaceAll(rawJSON, `"timeTravel": null`, `"timeTravel": ""`)
	rawJSON = strings.ReplaceAll(rawJSON, `"theme": null`, `"theme": ""`)
	rawJSON = strings.ReplaceAll(rawJSON, `"missingPrices": null`, `"missingPrices": []`)
	rawJSON = strings.ReplaceAll(rawJSON, `"dailyCosts": null`, `"dailyCosts": []`)
	rawJSON = strings.ReplaceAll(rawJSON, `"placesToVisit": null`, `"placesToVisit": []`)

	return rawJSON
}
