// File: /services/map_service.go
package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"wanderspot-api/models"
	"wanderspot-api/utils"
)

// ParseCoordinate coerces a loosely-typed coordinate value (numeric or
// numeric string) to a finite float64. Returns false when the value is
// absent, unparseable, NaN or infinite.
func ParseCoordinate(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return finite(*v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// BuildMarkers projects raw records into coordinate-valid map markers.
// A record is materialized only when both coordinates coerce to finite
// numbers within valid latitude/longitude ranges; anything else is
// silently excluded from the map layer.
func BuildMarkers(sources []models.MarkerSource) []models.MapMarkerItem {
	markers := make([]models.MapMarkerItem, 0, len(sources))
	for _, src := range sources {
		lat, ok := ParseCoordinate(src.Lat)
		if !ok {
			continue
		}
		lng, ok := ParseCoordinate(src.Lng)
		if !ok {
			continue
		}
		if !utils.IsValidLatitude(lat) || !utils.IsValidLongitude(lng) {
			continue
		}

		markers = append(markers, models.MapMarkerItem{
			ID:        src.ID,
			Title:     src.Title,
			Subtitle:  src.Subtitle,
			Image:     src.Image,
			Lat:       lat,
			Lng:       lng,
			Type:      src.Type,
			MediaType: src.MediaType,
		})
	}
	return markers
}

// PostMarkerSource adapts a post row for map display
func PostMarkerSource(p models.Post) models.MarkerSource {
	title := strValue(p.Title)
	if title == "" {
		title = strValue(p.SpotName)
	}
	if title == "" {
		title = "User Post"
	}

	return models.MarkerSource{
		ID:        p.ID,
		Title:     title,
		Subtitle:  strValue(p.SpotName),
		Image:     p.MediaURL,
		Lat:       p.Lat,
		Lng:       p.Lng,
		Type:      models.ItemTypePost,
		MediaType: p.MediaType,
	}
}

// PlaceMarkerSource adapts a place row for map display
func PlaceMarkerSource(p models.Place) models.MarkerSource {
	return models.MarkerSource{
		ID:       p.ID,
		Title:    p.Title,
		Subtitle: strValue(p.City),
		Image:    strValue(p.PhotoURL),
		Lat:      p.Lat,
		Lng:      p.Lng,
		Type:     models.ItemTypePlace,
	}
}

// DirectionsURL builds the navigation handoff URL for a coordinate. The
// native scheme is used for ios and android; anything else falls back to
// the web maps URL.
func DirectionsURL(lat, lng float64, platform string) string {
	switch platform {
	case "ios":
		return fmt.Sprintf("maps://?daddr=%v,%v", lat, lng)
	case "android":
		return fmt.Sprintf("geo:%v,%v", lat, lng)
	default:
		return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", lat, lng)
	}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
