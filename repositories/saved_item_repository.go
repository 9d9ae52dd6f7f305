// File: /repositories/saved_item_repository.go
package repositories

import (
	"gorm.io/gorm"
	"wanderspot-api/models"
)

type SavedItemRepository struct {
	db *gorm.DB
}

func NewSavedItemRepository(db *gorm.DB) *SavedItemRepository {
	return &SavedItemRepository{db: db}
}

// ListByUser retrieves all saved items for a user
func (r *SavedItemRepository) ListByUser(userID string) ([]models.SavedItem, error) {
	var items []models.SavedItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Insert creates a saved item row. The unique (user_id, item_id, item_type)
// constraint rejects duplicates at the database level.
func (r *SavedItemRepository) Insert(item *models.SavedItem) error {
	return r.db.Create(item).Error
}

// Delete removes the matching saved item row(s)
func (r *SavedItemRepository) Delete(userID, itemID, itemType string) error {
	return r.db.Where("user_id = ? AND item_id = ? AND item_type = ?", userID, itemID, itemType).
		Delete(&models.SavedItem{}).Error
}

// DeleteOrphanedPosts removes saved items whose post no longer exists
func (r *SavedItemRepository) DeleteOrphanedPosts() (int64, error) {
	result := r.db.Where(
		"item_type = ? AND item_id NOT IN (?)",
		models.ItemTypePost,
		r.db.Model(&models.Post{}).Select("id"),
	).Delete(&models.SavedItem{})
	return result.RowsAffected, result.Error
}
