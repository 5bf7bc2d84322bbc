package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"channel-radio/internal/api/middleware"
	"channel-radio/internal/models"
)

// FavoriteHandler manages a listener's followed DJs and shows.
type FavoriteHandler struct {
	db *gorm.DB
}

// NewFavoriteHandler creates a new FavoriteHandler instance
func NewFavoriteHandler(db *gorm.DB) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

// GetFavorites lists the authenticated user's favorites.
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID := middleware.UserID(c)

	var favs []models.Favorite
	if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	c.JSON(http.StatusOK, favs)
}

// CreateFavorite saves a followed term, optionally scoped to a station.
func (h *FavoriteHandler) CreateFavorite(c *gin.Context) {
	var input struct {
		Term      string `json:"term" binding:"required"`
		StationID string `json:"station_id"`
		ShowName  string `json:"show_name"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Term = strings.TrimSpace(input.Term)
	if input.Term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Term must not be blank"})
		return
	}

	fav := models.Favorite{
		UserID:    middleware.UserID(c),
		Term:      input.Term,
		StationID: input.StationID,
		ShowName:  strings.TrimSpace(input.ShowName),
	}

	if err := h.db.Create(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// DeleteFavorite removes one of the user's own favorites.
func (h *FavoriteHandler) DeleteFavorite(c *gin.Context) {
	// 1. Convert the ID from string to uint
	idStr := c.Param("id")
	favID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite ID"})
		return
	}

	// 2. Soft delete, scoped to the owner so users can't delete each other's
	result := h.db.Where("user_id = ?", middleware.UserID(c)).
		Delete(&models.Favorite{}, uint(favID))

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	// 3. Check if any row was actually affected
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite removed",
		"id":      favID,
	})
}
