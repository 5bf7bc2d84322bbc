package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"channel-radio/internal/models"
)

// ShowHandler serves the raw show feed the clients poll once per page load.
type ShowHandler struct {
	db *gorm.DB
}

// NewShowHandler creates a new ShowHandler instance
func NewShowHandler(db *gorm.DB) *ShowHandler {
	return &ShowHandler{db: db}
}

// GetShows returns the show feed as a flat JSON array, DJ slots included.
// Optional ?from= / ?to= (RFC 3339) narrow the window.
func (h *ShowHandler) GetShows(c *gin.Context) {
	query := h.db.Preload("Slots").Order("start_time ASC")

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp"})
			return
		}
		query = query.Where("end_time >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' timestamp"})
			return
		}
		query = query.Where("start_time <= ?", t)
	}

	var shows []models.Show
	if err := query.Find(&shows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shows"})
		return
	}

	c.JSON(http.StatusOK, shows)
}
