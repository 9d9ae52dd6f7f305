// File: /models/chat.go
package models

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation scopes a chat transcript to a user. The unique index on
// user_id enforces one conversation per user.
type Conversation struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`

	User     User      `json:"-" gorm:"foreignKey:UserID"`
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID"`
}

// Message is one transcript entry. Append-only, ordered by created_at
// ascending; deletable only in bulk per conversation.
type Message struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	ConversationID string    `json:"conversation_id" gorm:"not null;size:191;index"`
	Role           string    `json:"role" gorm:"not null;size:10"`
	Content        string    `json:"content" gorm:"not null;type:text"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChatTurn is the role+content pair sent to the generation endpoint,
// stripped of ids and timestamps.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
