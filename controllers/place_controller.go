// File: /controllers/place_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"wanderspot-api/models"
	"wanderspot-api/utils"
)

type PlaceController struct {
	db *gorm.DB
}

func NewPlaceController(db *gorm.DB) *PlaceController {
	return &PlaceController{db: db}
}

// GetPlaces returns all curated places, newest first
func (pc *PlaceController) GetPlaces(c *gin.Context) {
	var places []models.Place
	if err := pc.db.Order("created_at DESC").Find(&places).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch places")
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}

func (pc *PlaceController) GetPlace(c *gin.Context) {
	placeID := c.Param("id")

	var place models.Place
	if err := pc.db.First(&place, "id = ?", placeID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	c.JSON(http.StatusOK, place)
}
