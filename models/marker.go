// File: /models/marker.go
package models

// MapMarkerItem is a map-displayable point projected from a Post or
// Place with validated coordinates. Derived and ephemeral, never persisted.
type MapMarkerItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle,omitempty"`
	Image     string  `json:"image,omitempty"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Type      string  `json:"type"`
	MediaType string  `json:"media_type,omitempty"`
}

// MarkerSource is one raw record considered for map display. Lat and Lng
// are kept loosely typed because remote rows may carry coordinates as
// numbers or numeric strings; coercion happens in the marker builder.
type MarkerSource struct {
	ID        string
	Title     string
	Subtitle  string
	Image     string
	Lat       interface{}
	Lng       interface{}
	Type      string
	MediaType string
}

// MarkersResponse is the map layer payload for GET /map/markers
type MarkersResponse struct {
	Count   int             `json:"count"`
	Markers []MapMarkerItem `json:"markers"`
}
