// File: /services/geocoding_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// GeocodeAddress holds the address components a reverse geocoder returns
type GeocodeAddress struct {
	Name    string `json:"name"`
	Road    string `json:"road"`
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type geocodeResponse struct {
	Address GeocodeAddress `json:"address"`
}

// GeocodingService resolves coordinates to a short human-readable place
// label via a Nominatim-style reverse geocoding endpoint. Concurrent
// lookups for the same coordinate share a single in-flight request.
type GeocodingService struct {
	baseURL string
	client  *http.Client
	group   singleflight.Group
	logger  *zap.Logger
}

func NewGeocodingService(baseURL string, logger *zap.Logger) *GeocodingService {
	return &GeocodingService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// ReverseGeocode returns a short place label for a coordinate. Failures are
// expected to be treated as non-fatal by callers: the coordinate remains
// usable with an absent label.
func (g *GeocodingService) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	key := fmt.Sprintf("%.6f,%.6f", lat, lng)

	label, err, _ := g.group.Do(key, func() (interface{}, error) {
		return g.lookup(ctx, lat, lng)
	})
	if err != nil {
		return "", err
	}

	return label.(string), nil
}

func (g *GeocodingService) lookup(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("zoom", "18")
	query.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("User-Agent", "WanderSpot/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("Reverse geocoding request failed", zap.Error(err))
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("Reverse geocoding returned non-OK status", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("reverse geocoding failed: status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode geocode response: %w", err)
	}

	return ComposeSpotName(body.Address), nil
}

// ComposeSpotName builds a short label from address components:
// [landmark/road, locality, country], truncated to the first two
// non-empty components.
func ComposeSpotName(addr GeocodeAddress) string {
	place := addr.Name
	if place == "" {
		place = addr.Road
	}

	area := addr.City
	if area == "" {
		area = addr.Town
	}
	if area == "" {
		area = addr.Village
	}
	if area == "" {
		area = addr.State
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{place, area, addr.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}

	label := ""
	for i, part := range parts {
		if i > 0 {
			label += ", "
		}
		label += part
	}
	return label
}
