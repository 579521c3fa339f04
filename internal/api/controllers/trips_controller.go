package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripcheck/internal/models/request_models"
	"tripcheck/internal/services"
	"tripcheck/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

func (tc *TripsController) CreateTripHandler(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID := c.GetString("user_id")

	resp, err := tc.tripService.GenerateTrip(userID, req, c.Request.Context())
	if err != nil {
		// a rejection still carries the corrected document and findings
		if errors.Is(err, utils.ErrItineraryRejected) && resp != nil {
			traceID, _ := c.Get("trace_id")
			c.JSON(http.StatusUnprocessableEntity, utils.APIResponse{
				Status:  "error",
				Code:    http.StatusUnprocessableEntity,
				Message: "Generated itinerary failed validation",
				TraceID: traceID.(string),
				Data:    resp,
			})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Trip generated and saved successfully")
}

func (tc *TripsController) GetTripHandler(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	resp, err := tc.tripService.GetTripByID(tripID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fetched trip successfully")
}

func (tc *TripsController) GetTripReportHandler(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	report, err := tc.tripService.GetTripReport(tripID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Fetched validation report successfully")
}

func (tc *TripsController) ListTripsHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userID := c.GetString("user_id")

	summaries, err := tc.tripService.ListTripsByUser(userID, page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Fetched trips successfully")
}

func (tc *TripsController) DeleteTripHandler(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	userID := c.GetString("user_id")

	if err := tc.tripService.DeleteTrip(tripID, userID, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
