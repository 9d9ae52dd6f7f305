// File: /models/preferences.go
package models

import (
	"time"
)

const (
	BudgetLevelBudget   = "budget"
	BudgetLevelModerate = "moderate"
	BudgetLevelLuxury   = "luxury"

	TravelStyleRelaxed   = "relaxed"
	TravelStyleBalanced  = "balanced"
	TravelStyleIntensive = "intensive"
)

// Preferences stores travel preferences per user. Updates are
// last-write-wins; no version checking.
type Preferences struct {
	ID              string      `json:"id" gorm:"primaryKey;size:191"`
	UserID          string      `json:"user_id" gorm:"not null;size:191;uniqueIndex"`
	Interests       StringSlice `json:"interests" gorm:"type:json"`
	PreferredCities StringSlice `json:"preferred_cities" gorm:"type:json"`
	BudgetLevel     string      `json:"budget_level" gorm:"not null;default:'moderate';size:20"`
	TravelStyle     string      `json:"travel_style" gorm:"not null;default:'balanced';size:20"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (Preferences) TableName() string {
	return "user_preferences"
}
