// File: /models/user.go
package models

import (
	"strings"
	"time"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Handle        string    `json:"handle" gorm:"uniqueIndex;not null;size:50"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	DisplayName   *string   `json:"display_name" gorm:"size:255"`
	AvatarURL     *string   `json:"avatar_url" gorm:"size:500"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Posts       []Post       `json:"posts,omitempty" gorm:"foreignKey:UserID"`
	SavedItems  []SavedItem  `json:"saved_items,omitempty" gorm:"foreignKey:UserID"`
	Preferences *Preferences `json:"preferences,omitempty" gorm:"foreignKey:UserID"`
}

// Profile is the public projection of a user attached to feed rows.
type Profile struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

func (u *User) Profile() Profile {
	return Profile{
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

// GenerateHandleFromName creates a handle candidate from the user's name
func GenerateHandleFromName(name string) string {
	handle := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	handle = strings.ReplaceAll(handle, ".", "")
	handle = strings.ReplaceAll(handle, "-", "_")
	return handle
}
