// File: /models/place.go
package models

import (
	"time"
)

// Place is curated content: read-only from the client's perspective.
type Place struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Description *string   `json:"description" gorm:"size:1000"`
	PhotoURL    *string   `json:"photo_url" gorm:"size:500"`
	Category    *string   `json:"category" gorm:"size:100"`
	City        *string   `json:"city" gorm:"size:100"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	CreatedAt   time.Time `json:"created_at"`
}
