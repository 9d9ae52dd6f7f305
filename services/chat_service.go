// File: /services/chat_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"wanderspot-api/models"
)

// ChatRepository persists conversations and their transcripts
type ChatRepository interface {
	LatestConversation(userID string) (*models.Conversation, error)
	CreateConversation(conv *models.Conversation) error
	ListMessages(conversationID string) ([]models.Message, error)
	InsertMessage(msg *models.Message) error
	DeleteMessages(conversationID string) error
}

// ReplyGenerator produces an assistant reply from the ordered transcript
type ReplyGenerator interface {
	Reply(ctx context.Context, transcript []models.ChatTurn) (string, error)
}

// ChatSession manages one user's append-only conversation. Messages render
// in append order and the transcript sent to the generator is exactly the
// rendered order up to and including the newest user message. A failed send
// rolls back the optimistically-appended user message and is not retried.
type ChatSession struct {
	repo      ChatRepository
	generator ReplyGenerator

	mu           sync.Mutex
	sending      bool
	conversation *models.Conversation
	messages     []models.Message
}

func NewChatSession(repo ChatRepository, generator ReplyGenerator) *ChatSession {
	return &ChatSession{
		repo:      repo,
		generator: generator,
	}
}

// Resolve adopts the user's conversation, creating one lazily when none
// exists, and loads its transcript in ascending time order.
func (s *ChatSession) Resolve(userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.repo.LatestConversation(userID)
	if err != nil {
		return fmt.Errorf("failed to look up conversation: %w", err)
	}

	if conv == nil {
		conv = &models.Conversation{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		if err := s.repo.CreateConversation(conv); err != nil {
			return fmt.Errorf("failed to create conversation: %w", err)
		}
		s.conversation = conv
		s.messages = nil
		return nil
	}

	messages, err := s.repo.ListMessages(conv.ID)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	s.conversation = conv
	s.messages = messages
	return nil
}

// Conversation returns the resolved conversation, or nil before Resolve
func (s *ChatSession) Conversation() *models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversation
}

// Messages returns a copy of the transcript in append order
func (s *ChatSession) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Sending reports whether a send is in flight
func (s *ChatSession) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// SendMessage appends the user message optimistically, persists it, obtains
// an assistant reply for the full transcript, and appends and persists the
// reply. A blank message or a send while one is in flight is a no-op and
// returns nil. On failure the optimistic user message is removed so the
// failed turn leaves no dangling unanswered message.
func (s *ChatSession) SendMessage(ctx context.Context, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.conversation == nil {
		s.mu.Unlock()
		return nil, ErrNoConversation
	}
	if s.sending {
		s.mu.Unlock()
		return nil, nil
	}
	s.sending = true

	userMessage := models.Message{
		ID:             uuid.New().String(),
		ConversationID: s.conversation.ID,
		Role:           models.RoleUser,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	s.messages = append(s.messages, userMessage)

	transcript := make([]models.ChatTurn, 0, len(s.messages))
	for _, m := range s.messages {
		transcript = append(transcript, models.ChatTurn{Role: m.Role, Content: m.Content})
	}
	s.mu.Unlock()

	assistantMessage, err := s.completeTurn(ctx, userMessage, transcript)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false

	if err != nil {
		s.removeLocked(userMessage.ID)
		return nil, err
	}

	s.messages = append(s.messages, *assistantMessage)
	return assistantMessage, nil
}

func (s *ChatSession) completeTurn(ctx context.Context, userMessage models.Message, transcript []models.ChatTurn) (*models.Message, error) {
	if err := s.repo.InsertMessage(&userMessage); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	reply, err := s.generator.Reply(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	assistantMessage := models.Message{
		ID:             uuid.New().String(),
		ConversationID: userMessage.ConversationID,
		Role:           models.RoleAssistant,
		Content:        reply,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.InsertMessage(&assistantMessage); err != nil {
		return nil, fmt.Errorf("failed to save reply: %w", err)
	}

	return &assistantMessage, nil
}

// ClearChat deletes all persisted messages for the conversation, then
// empties the local transcript. Irreversible.
func (s *ChatSession) ClearChat() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conversation == nil {
		return ErrNoConversation
	}

	if err := s.repo.DeleteMessages(s.conversation.ID); err != nil {
		return fmt.Errorf("failed to clear chat: %w", err)
	}

	s.messages = nil
	return nil
}

func (s *ChatSession) removeLocked(messageID string) {
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.ID != messageID {
			kept = append(kept, m)
		}
	}
	s.messages = kept
}
