// File: /services/map_service_test.go
package services

import (
	"math"
	"testing"

	"wanderspot-api/models"
)

func TestParseCoordinate(t *testing.T) {
	valid := 35.6
	var nilPtr *float64

	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"float", 35.6, 35.6, true},
		{"numeric string", "139.7", 139.7, true},
		{"negative string", "-33.86", -33.86, true},
		{"int", 10, 10, true},
		{"pointer", &valid, 35.6, true},
		{"nil", nil, 0, false},
		{"nil pointer", nilPtr, 0, false},
		{"garbage string", "not-a-number", 0, false},
		{"empty string", "", 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf", math.Inf(1), 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCoordinate(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseCoordinate(%v) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseCoordinate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestBuildMarkersFiltersInvalidCoordinates(t *testing.T) {
	sources := []models.MarkerSource{
		{ID: "string-coords", Title: "Shibuya", Lat: "35.6", Lng: "139.7", Type: models.ItemTypePost},
		{ID: "numeric-coords", Title: "Gion", Lat: 35.0037, Lng: 135.7788, Type: models.ItemTypePlace},
		{ID: "lat-out-of-range", Title: "Nowhere", Lat: 200.0, Lng: 10.0, Type: models.ItemTypePost},
		{ID: "lng-out-of-range", Title: "Nowhere", Lat: 10.0, Lng: -181.0, Type: models.ItemTypePost},
		{ID: "missing-lat", Title: "No coords", Lat: nil, Lng: 139.7, Type: models.ItemTypePlace},
		{ID: "garbage-lng", Title: "Bad lng", Lat: 35.6, Lng: "abc", Type: models.ItemTypePost},
	}

	markers := BuildMarkers(sources)

	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}
	if markers[0].ID != "string-coords" || markers[1].ID != "numeric-coords" {
		t.Fatalf("unexpected marker ids: %s, %s", markers[0].ID, markers[1].ID)
	}
	if markers[0].Lat != 35.6 || markers[0].Lng != 139.7 {
		t.Fatalf("string coordinates not coerced: %v, %v", markers[0].Lat, markers[0].Lng)
	}
}

func TestBuildMarkersBoundaryValues(t *testing.T) {
	sources := []models.MarkerSource{
		{ID: "south-pole", Lat: -90.0, Lng: 0.0, Type: models.ItemTypePlace},
		{ID: "date-line", Lat: 0.0, Lng: 180.0, Type: models.ItemTypePlace},
	}

	markers := BuildMarkers(sources)
	if len(markers) != 2 {
		t.Fatalf("boundary coordinates should be valid, got %d markers", len(markers))
	}
}

func TestPostMarkerSourceTitleFallback(t *testing.T) {
	title := "Sunset at the pier"
	spot := "Enoshima"

	withTitle := PostMarkerSource(models.Post{ID: "p1", Title: &title, SpotName: &spot, MediaURL: "u", MediaType: models.MediaTypePhoto})
	if withTitle.Title != title {
		t.Fatalf("expected title %q, got %q", title, withTitle.Title)
	}

	withSpot := PostMarkerSource(models.Post{ID: "p2", SpotName: &spot, MediaURL: "u", MediaType: models.MediaTypePhoto})
	if withSpot.Title != spot {
		t.Fatalf("expected spot name fallback %q, got %q", spot, withSpot.Title)
	}

	bare := PostMarkerSource(models.Post{ID: "p3", MediaURL: "u", MediaType: models.MediaTypeVideo})
	if bare.Title != "User Post" {
		t.Fatalf("expected default title, got %q", bare.Title)
	}
	if bare.MediaType != models.MediaTypeVideo {
		t.Fatalf("expected media type carried through, got %q", bare.MediaType)
	}
}

func TestDirectionsURL(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"ios", "maps://?daddr=35.6,139.7"},
		{"android", "geo:35.6,139.7"},
		{"web", "https://www.google.com/maps/dir/?api=1&destination=35.6,139.7"},
		{"", "https://www.google.com/maps/dir/?api=1&destination=35.6,139.7"},
	}

	for _, tt := range tests {
		if got := DirectionsURL(35.6, 139.7, tt.platform); got != tt.want {
			t.Errorf("DirectionsURL(%q) = %q, want %q", tt.platform, got, tt.want)
		}
	}
}
