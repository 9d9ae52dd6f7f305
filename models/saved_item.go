// File: /models/saved_item.go
package models

import (
	"time"
)

const (
	ItemTypePost  = "post"
	ItemTypePlace = "place"
)

// SavedItem represents a bookmarked post or place by a user.
// Uniqueness of (user_id, item_id, item_type) is enforced by the database.
type SavedItem struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:idx_saved_items_user_item"`
	ItemID    string    `json:"item_id" gorm:"not null;size:191;uniqueIndex:idx_saved_items_user_item"`
	ItemType  string    `json:"item_type" gorm:"not null;size:10;uniqueIndex:idx_saved_items_user_item"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// IsValidItemType reports whether t is a known saveable item type
func IsValidItemType(t string) bool {
	return t == ItemTypePost || t == ItemTypePlace
}
