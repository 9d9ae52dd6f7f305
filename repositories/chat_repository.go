// File: /repositories/chat_repository.go
package repositories

import (
	"errors"
	"gorm.io/gorm"
	"wanderspot-api/models"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// LatestConversation returns the most recently created conversation for a
// user, or nil when none exists. The unique constraint on user_id keeps this
// to at most one row; ordering is kept as a defensive measure for data
// predating the constraint.
func (r *ChatRepository) LatestConversation(userID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// CreateConversation inserts a new conversation scoped to a user
func (r *ChatRepository) CreateConversation(conv *models.Conversation) error {
	return r.db.Create(conv).Error
}

// ListMessages loads a conversation's transcript in ascending time order
func (r *ChatRepository) ListMessages(conversationID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// InsertMessage appends one message to a conversation
func (r *ChatRepository) InsertMessage(msg *models.Message) error {
	return r.db.Create(msg).Error
}

// DeleteMessages removes all messages for a conversation
func (r *ChatRepository) DeleteMessages(conversationID string) error {
	return r.db.Where("conversation_id = ?", conversationID).Delete(&models.Message{}).Error
}
