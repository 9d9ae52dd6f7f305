// File: /services/saved_items_service.go
package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"wanderspot-api/models"
)

// SavedItemRepository is the remote side of the saved-items store
type SavedItemRepository interface {
	ListByUser(userID string) ([]models.SavedItem, error)
	Insert(item *models.SavedItem) error
	Delete(userID, itemID, itemType string) error
}

// SavedItemsStore mirrors one user's saved set as a read cache over the
// repository. The cache mutates only after the remote write succeeds; a
// failed save or remove leaves it untouched. The repository's unique
// constraint is the real duplicate guard, the IsSaved pre-check in Toggle
// is a best-effort optimization that can lose a race with another session.
type SavedItemsStore struct {
	repo   SavedItemRepository
	userID string

	mu    sync.Mutex
	items []models.SavedItem
}

func NewSavedItemsStore(repo SavedItemRepository, userID string) *SavedItemsStore {
	return &SavedItemsStore{
		repo:   repo,
		userID: userID,
	}
}

// Load replaces the cache wholesale with the remote state. With no
// authenticated user it yields an empty set without error.
func (s *SavedItemsStore) Load() ([]models.SavedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		s.items = nil
		return nil, nil
	}

	items, err := s.repo.ListByUser(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved items: %w", err)
	}

	s.items = items
	return s.snapshot(), nil
}

// Items returns a copy of the cached set
func (s *SavedItemsStore) Items() []models.SavedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// IsSaved is a pure local lookup against the cached set
func (s *SavedItemsStore) IsSaved(itemID, itemType string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSavedLocked(itemID, itemType)
}

// Save inserts the saved item remotely, then appends it to the cache.
// Saving an already-saved item is a no-op.
func (s *SavedItemsStore) Save(itemID, itemType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		return ErrNotAuthenticated
	}
	if !models.IsValidItemType(itemType) {
		return fmt.Errorf("invalid item type: %s", itemType)
	}
	if s.isSavedLocked(itemID, itemType) {
		return nil
	}

	item := models.SavedItem{
		ID:        uuid.New().String(),
		UserID:    s.userID,
		ItemID:    itemID,
		ItemType:  itemType,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(&item); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	s.items = append(s.items, item)
	return nil
}

// Remove deletes the saved item remotely, then evicts it from the cache
func (s *SavedItemsStore) Remove(itemID, itemType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		return ErrNotAuthenticated
	}

	if err := s.repo.Delete(s.userID, itemID, itemType); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	kept := s.items[:0]
	for _, item := range s.items {
		if !(item.ItemID == itemID && item.ItemType == itemType) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

// Toggle saves or removes based on the current cached state and reports
// the resulting saved state.
func (s *SavedItemsStore) Toggle(itemID, itemType string) (bool, error) {
	if s.IsSaved(itemID, itemType) {
		if err := s.Remove(itemID, itemType); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.Save(itemID, itemType); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SavedItemsStore) isSavedLocked(itemID, itemType string) bool {
	for _, item := range s.items {
		if item.ItemID == itemID && item.ItemType == itemType {
			return true
		}
	}
	return false
}

func (s *SavedItemsStore) snapshot() []models.SavedItem {
	out := make([]models.SavedItem, len(s.items))
	copy(out, s.items)
	return out
}
