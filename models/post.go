// File: /models/post.go
package models

import (
	"time"
)

const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index:idx_posts_user_created"`
	MediaURL  string    `json:"media_url" gorm:"not null;size:500"`
	MediaType string    `json:"media_type" gorm:"not null;size:10"`
	Title     *string   `json:"title" gorm:"size:255"`
	Caption   *string   `json:"caption" gorm:"size:1000"`
	Category  *string   `json:"category" gorm:"size:100"`
	Lat       *float64  `json:"lat"`
	Lng       *float64  `json:"lng"`
	SpotName  *string   `json:"spot_name" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_posts_user_created"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// PostWithProfile is the feed row shape: a post plus the public
// projection of its author.
type PostWithProfile struct {
	Post
	Profile Profile `json:"profile"`
}

// FeedResponse is the posts list response with its limit echoed back
type FeedResponse struct {
	Posts []PostWithProfile `json:"posts"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
}
