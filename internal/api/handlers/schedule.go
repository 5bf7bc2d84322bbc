package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"channel-radio/internal/models"
	"channel-radio/internal/schedule"
)

// ScheduleHandler renders the day grid: clipped, positioned display slots.
type ScheduleHandler struct {
	db     *gorm.DB
	layout schedule.Layout
}

// NewScheduleHandler creates a new ScheduleHandler instance
func NewScheduleHandler(db *gorm.DB, layout schedule.Layout) *ScheduleHandler {
	return &ScheduleHandler{db: db, layout: layout}
}

type gridBlock struct {
	schedule.DisplaySlot
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Live   bool    `json:"live"`
	Past   bool    `json:"past"`
}

// GetGrid returns the positioned slots for ?date=YYYY-MM-DD (default today).
// "now" is read once per request so liveness is consistent across the page.
func (h *ScheduleHandler) GetGrid(c *gin.Context) {
	now := time.Now()

	date := now
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, want YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	// Fetch only candidates that can overlap the day; clipping happens in the
	// schedule package.
	dayStart, dayEnd := schedule.DayBounds(date)
	var shows []models.Show
	err := h.db.Preload("Slots").
		Where("start_time <= ? AND end_time >= ?", dayEnd, dayStart).
		Find(&shows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return
	}

	slots := schedule.BuildDaySlots(shows, date)
	windowStart, windowEnd := schedule.VisibleHours(slots)

	blocks := make([]gridBlock, 0, len(slots))
	for _, slot := range slots {
		top, height := schedule.Position(slot, windowStart, h.layout)
		blocks = append(blocks, gridBlock{
			DisplaySlot: slot,
			Top:         top,
			Height:      height,
			Live:        slot.IsLive(now),
			Past:        slot.IsPast(now),
		})
	}

	gridBuilds.Inc()

	c.JSON(http.StatusOK, gin.H{
		"date":         dayStart.Format("2006-01-02"),
		"window_start": windowStart,
		"window_end":   windowEnd,
		"slots":        blocks,
	})
}

// GetNowPlaying resolves the slot currently on air for the now-playing panel.
func (h *ScheduleHandler) GetNowPlaying(c *gin.Context) {
	now := time.Now()

	dayStart, dayEnd := schedule.DayBounds(now)
	var shows []models.Show
	err := h.db.Preload("Slots").
		Where("start_time <= ? AND end_time >= ?", dayEnd, dayStart).
		Find(&shows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return
	}

	current := schedule.Current(schedule.BuildDaySlots(shows, now), now)
	if current == nil {
		c.JSON(http.StatusOK, gin.H{"on_air": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"on_air": true,
		"slot":   current,
		"live":   current.IsLive(now),
	})
}
