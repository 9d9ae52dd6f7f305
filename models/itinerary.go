// File: /models/itinerary.go
package models

// ItineraryRequest is the input for the itinerary generation endpoint
type ItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1,max=30"`
	Interests   []string `json:"interests"`
}

type ItineraryActivity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

type ItineraryDay struct {
	Day        int                 `json:"day"`
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
}

// Itinerary is a structured day-by-day plan produced by the generation
// endpoint. Never persisted.
type Itinerary struct {
	Days []ItineraryDay `json:"days"`
}

// ItineraryResponse wraps the generated plan for the API response
type ItineraryResponse struct {
	Itinerary Itinerary `json:"itinerary"`
}
