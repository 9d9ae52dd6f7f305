// File: /services/generation_service_test.go
package services

import (
	"testing"
)

func TestParseItinerary(t *testing.T) {
	valid := `{"days":[{"day":1,"title":"Old Town","activities":[{"time":"09:00","activity":"Temple walk","description":"Morning visit before the crowds"}]}]}`

	t.Run("plain JSON", func(t *testing.T) {
		itinerary, err := ParseItinerary(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(itinerary.Days) != 1 {
			t.Fatalf("expected 1 day, got %d", len(itinerary.Days))
		}
		day := itinerary.Days[0]
		if day.Day != 1 || day.Title != "Old Town" {
			t.Fatalf("unexpected day: %+v", day)
		}
		if len(day.Activities) != 1 || day.Activities[0].Time != "09:00" {
			t.Fatalf("unexpected activities: %+v", day.Activities)
		}
	})

	t.Run("fenced JSON", func(t *testing.T) {
		itinerary, err := ParseItinerary("```json\n" + valid + "\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(itinerary.Days) != 1 {
			t.Fatalf("expected 1 day, got %d", len(itinerary.Days))
		}
	})

	t.Run("bare fence", func(t *testing.T) {
		if _, err := ParseItinerary("```\n" + valid + "\n```"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := ParseItinerary("Sure! Here is your itinerary: ..."); err == nil {
			t.Fatal("expected error for non-JSON response")
		}
	})

	t.Run("no days", func(t *testing.T) {
		if _, err := ParseItinerary(`{"days":[]}`); err == nil {
			t.Fatal("expected error for empty plan")
		}
	})
}
