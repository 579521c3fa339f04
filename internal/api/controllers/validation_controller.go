package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripcheck/internal/models/request_models"
	"tripcheck/internal/services"
	"tripcheck/pkg/utils"
)

type ValidationController struct {
	tripService services.TripServiceInterface
}

func NewValidationController(tripService services.TripServiceInterface) *ValidationController {
	return &ValidationController{
		tripService: tripService,
	}
}

// ValidateItineraryHandler runs an externally produced itinerary through
// the repair-and-validate pipeline. The call always answers 200 when the
// document could be processed; validity lives inside the report.
func (vc *ValidationController) ValidateItineraryHandler(c *gin.Context) {
	var req request_models.ValidateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := vc.tripService.ValidateItinerary(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary validated")
}
