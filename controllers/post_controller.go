// File: /controllers/post_controller.go
package controllers

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"wanderspot-api/models"
	"wanderspot-api/realtime"
	"wanderspot-api/services"
	"wanderspot-api/utils"
)

type PostController struct {
	db      *gorm.DB
	storage *services.StorageService
	hub     *realtime.Hub
}

func NewPostController(db *gorm.DB, storage *services.StorageService, hub *realtime.Hub) *PostController {
	return &PostController{
		db:      db,
		storage: storage,
		hub:     hub,
	}
}

type CreatePostRequest struct {
	MediaURL  string      `json:"media_url" binding:"required"`
	MediaType string      `json:"media_type" binding:"required"`
	Title     *string     `json:"title"`
	Caption   *string     `json:"caption"`
	Category  *string     `json:"category"`
	Lat       interface{} `json:"lat"`
	Lng       interface{} `json:"lng"`
	SpotName  *string     `json:"spot_name"`
}

func (pc *PostController) GetPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	var posts []models.Post
	var total int64

	pc.db.Model(&models.Post{}).Count(&total)

	if err := pc.db.Preload("User").Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	postsWithProfiles := make([]models.PostWithProfile, 0, len(posts))
	for _, post := range posts {
		profile := post.User.Profile()
		post.User = models.User{}
		postsWithProfiles = append(postsWithProfiles, models.PostWithProfile{
			Post:    post,
			Profile: profile,
		})
	}

	c.JSON(http.StatusOK, models.FeedResponse{
		Posts: postsWithProfiles,
		Limit: limit,
		Total: total,
	})
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidMediaType(req.MediaType) {
		utils.SendError(c, http.StatusBadRequest, "media_type must be photo or video")
		return
	}

	// Coordinates may arrive as numbers or numeric strings; coerce at the
	// boundary and reject out-of-range values instead of storing them.
	var lat, lng *float64
	if req.Lat != nil || req.Lng != nil {
		latVal, latOK := services.ParseCoordinate(req.Lat)
		lngVal, lngOK := services.ParseCoordinate(req.Lng)
		if !latOK || !lngOK || !utils.IsValidLatitude(latVal) || !utils.IsValidLongitude(lngVal) {
			utils.SendError(c, http.StatusBadRequest, "Invalid coordinates")
			return
		}
		lat, lng = &latVal, &lngVal
	}

	post := models.Post{
		ID:        uuid.New().String(),
		UserID:    userID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Title:     req.Title,
		Caption:   req.Caption,
		Category:  req.Category,
		Lat:       lat,
		Lng:       lng,
		SpotName:  req.SpotName,
	}

	if err := pc.db.Create(&post).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	// Load the complete post and notify realtime subscribers
	pc.db.First(&post, "id = ?", post.ID)
	pc.hub.PublishPostInserted(&post)

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetPost(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := pc.db.Preload("User").First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	profile := post.User.Profile()
	post.User = models.User{}

	c.JSON(http.StatusOK, models.PostWithProfile{
		Post:    post,
		Profile: profile,
	})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var post models.Post
	if err := pc.db.First(&post, "id = ? AND user_id = ?", postID, userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found or access denied")
		return
	}

	// Remove the stored media object first; a missing object is not fatal
	if objectPath := pc.storage.ObjectPathFromURL(post.MediaURL); objectPath != "" {
		if err := pc.storage.Remove(c.Request.Context(), objectPath); err != nil {
			fmt.Printf("Warning: Could not remove media for post %s: %v\n", postID, err)
		}
	}

	// Saved items referencing this post go with it
	pc.db.Where("item_id = ? AND item_type = ?", postID, models.ItemTypePost).Delete(&models.SavedItem{})

	if err := pc.db.Delete(&post).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	pc.hub.PublishPostDeleted(postID)

	utils.SendSuccess(c, "Post deleted successfully", nil)
}

func (pc *PostController) UploadMedia(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	mediaURL, err := pc.storage.Upload(c.Request.Context(), userID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to upload media")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"media_url": mediaURL})
}
