// File: /controllers/map_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"wanderspot-api/models"
	"wanderspot-api/services"
	"wanderspot-api/utils"
)

type MapController struct {
	db *gorm.DB
}

func NewMapController(db *gorm.DB) *MapController {
	return &MapController{db: db}
}

// GetMarkers composes posts and places into a unified, coordinate-valid
// marker set. Records without valid coordinates stay out of the map layer
// but remain visible elsewhere in the app.
func (mc *MapController) GetMarkers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var posts []models.Post
	if err := mc.db.Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	var places []models.Place
	if err := mc.db.Order("created_at DESC").Find(&places).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch places")
		return
	}

	sources := make([]models.MarkerSource, 0, len(posts)+len(places))
	for _, post := range posts {
		sources = append(sources, services.PostMarkerSource(post))
	}
	for _, place := range places {
		sources = append(sources, services.PlaceMarkerSource(place))
	}

	markers := services.BuildMarkers(sources)

	c.JSON(http.StatusOK, models.MarkersResponse{
		Count:   len(markers),
		Markers: markers,
	})
}

// GetDirections builds the navigation handoff URL for a coordinate
func (mc *MapController) GetDirections(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || !utils.IsValidLatitude(lat) || !utils.IsValidLongitude(lng) {
		utils.SendError(c, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	platform := c.DefaultQuery("platform", "web")

	c.JSON(http.StatusOK, gin.H{
		"url": services.DirectionsURL(lat, lng, platform),
	})
}
