// File: /controllers/itinerary_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"wanderspot-api/models"
	"wanderspot-api/services"
	"wanderspot-api/utils"
)

type ItineraryController struct {
	generation *services.GenerationService
}

func NewItineraryController(generation *services.GenerationService) *ItineraryController {
	return &ItineraryController{generation: generation}
}

// GenerateItinerary produces a structured day-by-day plan for a destination
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	itinerary, err := ic.generation.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.SendError(c, http.StatusBadGateway, "Failed to generate itinerary")
		return
	}

	c.JSON(http.StatusOK, models.ItineraryResponse{Itinerary: *itinerary})
}
