// File: /controllers/preference_controller.go
package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"net/http"
	"wanderspot-api/models"
	"wanderspot-api/utils"
)

type PreferenceController struct {
	db *gorm.DB
}

func NewPreferenceController(db *gorm.DB) *PreferenceController {
	return &PreferenceController{db: db}
}

type UpdatePreferencesRequest struct {
	Interests       []string `json:"interests"`
	PreferredCities []string `json:"preferred_cities"`
	BudgetLevel     string   `json:"budget_level" binding:"omitempty,oneof=budget moderate luxury"`
	TravelStyle     string   `json:"travel_style" binding:"omitempty,oneof=relaxed balanced intensive"`
}

type InterestRequest struct {
	Interest string `json:"interest" binding:"required"`
}

type PreferredCityRequest struct {
	City string `json:"city" binding:"required"`
}

// GetPreferences returns the user's preferences; a user without any yet
// gets null rather than an error.
func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	userID := c.GetString("user_id")

	prefs, err := pc.find(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch preferences")
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// UpdatePreferences creates or replaces preference fields. Last write wins;
// no version checking.
func (pc *PreferenceController) UpdatePreferences(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	prefs, err := pc.findOrCreate(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	updates := map[string]interface{}{}
	if req.Interests != nil {
		updates["interests"] = models.StringSlice(req.Interests)
	}
	if req.PreferredCities != nil {
		updates["preferred_cities"] = models.StringSlice(req.PreferredCities)
	}
	if req.BudgetLevel != "" {
		updates["budget_level"] = req.BudgetLevel
	}
	if req.TravelStyle != "" {
		updates["travel_style"] = req.TravelStyle
	}

	if len(updates) > 0 {
		if err := pc.db.Model(prefs).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update preferences")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (pc *PreferenceController) AddInterest(c *gin.Context) {
	userID := c.GetString("user_id")

	var req InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	prefs, err := pc.findOrCreate(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	for _, interest := range prefs.Interests {
		if interest == req.Interest {
			c.JSON(http.StatusOK, gin.H{"preferences": prefs})
			return
		}
	}

	prefs.Interests = append(prefs.Interests, req.Interest)
	if err := pc.db.Model(prefs).Update("interests", prefs.Interests).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to add interest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (pc *PreferenceController) RemoveInterest(c *gin.Context) {
	userID := c.GetString("user_id")

	var req InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	prefs, err := pc.find(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch preferences")
		return
	}
	if prefs == nil {
		utils.SendError(c, http.StatusNotFound, "No preferences found")
		return
	}

	kept := make(models.StringSlice, 0, len(prefs.Interests))
	for _, interest := range prefs.Interests {
		if interest != req.Interest {
			kept = append(kept, interest)
		}
	}

	prefs.Interests = kept
	if err := pc.db.Model(prefs).Update("interests", prefs.Interests).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to remove interest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (pc *PreferenceController) AddPreferredCity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PreferredCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	prefs, err := pc.findOrCreate(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	for _, city := range prefs.PreferredCities {
		if city == req.City {
			c.JSON(http.StatusOK, gin.H{"preferences": prefs})
			return
		}
	}

	prefs.PreferredCities = append(prefs.PreferredCities, req.City)
	if err := pc.db.Model(prefs).Update("preferred_cities", prefs.PreferredCities).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to add preferred city")
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (pc *PreferenceController) RemovePreferredCity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PreferredCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	prefs, err := pc.find(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch preferences")
		return
	}
	if prefs == nil {
		utils.SendError(c, http.StatusNotFound, "No preferences found")
		return
	}

	kept := make(models.StringSlice, 0, len(prefs.PreferredCities))
	for _, city := range prefs.PreferredCities {
		if city != req.City {
			kept = append(kept, city)
		}
	}

	prefs.PreferredCities = kept
	if err := pc.db.Model(prefs).Update("preferred_cities", prefs.PreferredCities).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to remove preferred city")
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (pc *PreferenceController) find(userID string) (*models.Preferences, error) {
	var prefs models.Preferences
	err := pc.db.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

func (pc *PreferenceController) findOrCreate(userID string) (*models.Preferences, error) {
	prefs, err := pc.find(userID)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		return prefs, nil
	}

	prefs = &models.Preferences{
		ID:          uuid.New().String(),
		UserID:      userID,
		BudgetLevel: models.BudgetLevelModerate,
		TravelStyle: models.TravelStyleBalanced,
	}
	if err := pc.db.Create(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
