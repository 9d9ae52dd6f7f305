// File: /controllers/saved_item_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"wanderspot-api/models"
	"wanderspot-api/services"
	"wanderspot-api/utils"
)

type SavedItemController struct {
	repo services.SavedItemRepository
}

func NewSavedItemController(repo services.SavedItemRepository) *SavedItemController {
	return &SavedItemController{repo: repo}
}

type SavedItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	ItemType string `json:"item_type" binding:"required,oneof=post place"`
}

func (sc *SavedItemController) store(c *gin.Context) (*services.SavedItemsStore, bool) {
	store := services.NewSavedItemsStore(sc.repo, c.GetString("user_id"))
	if _, err := store.Load(); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch saved items")
		return nil, false
	}
	return store, true
}

// GetSavedItems returns the user's full saved set
func (sc *SavedItemController) GetSavedItems(c *gin.Context) {
	store, ok := sc.store(c)
	if !ok {
		return
	}

	items := store.Items()
	if items == nil {
		items = []models.SavedItem{}
	}

	c.JSON(http.StatusOK, gin.H{"saved_items": items})
}

func (sc *SavedItemController) SaveItem(c *gin.Context) {
	var req SavedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	store, ok := sc.store(c)
	if !ok {
		return
	}

	if err := store.Save(req.ItemID, req.ItemType); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": true})
}

func (sc *SavedItemController) RemoveItem(c *gin.Context) {
	var req SavedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	store, ok := sc.store(c)
	if !ok {
		return
	}

	if err := store.Remove(req.ItemID, req.ItemType); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to remove item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": false})
}

// ToggleItem saves or removes based on the current state and reports the
// resulting saved state for the bookmark affordance.
func (sc *SavedItemController) ToggleItem(c *gin.Context) {
	var req SavedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	store, ok := sc.store(c)
	if !ok {
		return
	}

	saved, err := store.Toggle(req.ItemID, req.ItemType)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle saved item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
