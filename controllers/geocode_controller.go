// File: /controllers/geocode_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"wanderspot-api/services"
	"wanderspot-api/utils"
)

type GeocodeController struct {
	geocoding *services.GeocodingService
}

func NewGeocodeController(geocoding *services.GeocodingService) *GeocodeController {
	return &GeocodeController{geocoding: geocoding}
}

// ReverseGeocode resolves a coordinate to a short place label. Geocoding
// failure is non-fatal: the coordinates still come back, just without a
// spot name.
func (gc *GeocodeController) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || !utils.IsValidLatitude(lat) || !utils.IsValidLongitude(lng) {
		utils.SendError(c, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	spotName, err := gc.geocoding.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		spotName = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"lat":       lat,
		"lng":       lng,
		"spot_name": spotName,
	})
}
