// File: /services/geocoding_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestComposeSpotName(t *testing.T) {
	tests := []struct {
		name string
		addr GeocodeAddress
		want string
	}{
		{
			"landmark and city",
			GeocodeAddress{Name: "Fushimi Inari Taisha", City: "Kyoto", Country: "Japan"},
			"Fushimi Inari Taisha, Kyoto",
		},
		{
			"road fallback",
			GeocodeAddress{Road: "Nakamise-dori", City: "Tokyo", Country: "Japan"},
			"Nakamise-dori, Tokyo",
		},
		{
			"town fallback",
			GeocodeAddress{Name: "Kenroku-en", Town: "Kanazawa", Country: "Japan"},
			"Kenroku-en, Kanazawa",
		},
		{
			"village fallback",
			GeocodeAddress{Village: "Shirakawa-go", Country: "Japan"},
			"Shirakawa-go, Japan",
		},
		{
			"state fallback",
			GeocodeAddress{State: "Hokkaido", Country: "Japan"},
			"Hokkaido, Japan",
		},
		{
			"country only",
			GeocodeAddress{Country: "Japan"},
			"Japan",
		},
		{
			"all empty",
			GeocodeAddress{},
			"",
		},
		{
			"truncates to two components",
			GeocodeAddress{Name: "Osaka Castle", City: "Osaka", Country: "Japan"},
			"Osaka Castle, Osaka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeSpotName(tt.addr); got != tt.want {
				t.Fatalf("ComposeSpotName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReverseGeocode(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"format":         q.Get("format"),
			"zoom":           q.Get("zoom"),
			"addressdetails": q.Get("addressdetails"),
			"lat":            q.Get("lat"),
			"lon":            q.Get("lon"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":{"name":"Arashiyama Bamboo Grove","city":"Kyoto","country":"Japan"}}`))
	}))
	defer server.Close()

	svc := NewGeocodingService(server.URL, zap.NewNop())

	label, err := svc.ReverseGeocode(context.Background(), 35.0094, 135.6668)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Arashiyama Bamboo Grove, Kyoto" {
		t.Fatalf("unexpected label: %q", label)
	}

	if gotQuery["format"] != "json" || gotQuery["zoom"] != "18" || gotQuery["addressdetails"] != "1" {
		t.Fatalf("unexpected query parameters: %v", gotQuery)
	}
	if gotQuery["lat"] != "35.0094" || gotQuery["lon"] != "135.6668" {
		t.Fatalf("unexpected coordinates in query: %v", gotQuery)
	}
}

func TestReverseGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewGeocodingService(server.URL, zap.NewNop())

	if _, err := svc.ReverseGeocode(context.Background(), 35.0, 135.0); err == nil {
		t.Fatal("expected error on non-OK status")
	}
}
