package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"channel-radio/internal/api/middleware"
	"channel-radio/internal/genres"
	"channel-radio/internal/models"
	"channel-radio/internal/profiles"
	"channel-radio/internal/ranking"
	"channel-radio/internal/stations"
)

// SectionsHandler assembles the landing page carousels.
type SectionsHandler struct {
	db         *gorm.DB
	directory  *stations.Directory
	genreTable *genres.Table
	profiles   *profiles.Cache
	sectionCap int
}

// NewSectionsHandler creates a new SectionsHandler instance
func NewSectionsHandler(db *gorm.DB, dir *stations.Directory, table *genres.Table, cache *profiles.Cache, cap int) *SectionsHandler {
	return &SectionsHandler{db: db, directory: dir, genreTable: table, profiles: cache, sectionCap: cap}
}

// GetSections returns the ranked carousels. ?city= and ?genre= narrow the
// "Local DJs" and "Our Picks" sections; favorites are resolved from the
// bearer token subject when one was sent.
func (h *SectionsHandler) GetSections(c *gin.Context) {
	started := time.Now()
	now := started

	// 1. Candidate pool: everything still running or upcoming.
	var shows []models.Show
	if err := h.db.Preload("Slots").Where("end_time >= ?", now).Find(&shows).Error; err != nil {
		sectionBuilds.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shows"})
		return
	}

	// 2. Fill gaps from claimed DJ profiles (cached, so this is cheap on
	// the hot path)
	h.enrichFromProfiles(shows)

	// 3. Favorites, when the request carries a valid token.
	var favs []models.Favorite
	if userID := middleware.UserID(c); userID != "" {
		h.db.Where("user_id = ?", userID).Find(&favs)
	}

	sections := ranking.BuildSections(ranking.SectionInput{
		Shows:     shows,
		Favorites: favs,
		City:      c.Query("city"),
		Genre:     c.Query("genre"),
		Now:       now,
		Directory: h.directory,
		Genres:    h.genreTable,
		Cap:       h.sectionCap,
	})

	sectionBuilds.WithLabelValues("ok").Inc()
	sectionBuildDuration.Observe(time.Since(started).Seconds())

	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// enrichFromProfiles backfills DJ photo, city, and genres for shows whose
// feed record is incomplete but whose DJ has a claimed profile. Lookup
// failures just leave the show as-is; the filter decides eligibility.
func (h *SectionsHandler) enrichFromProfiles(shows []models.Show) {
	if h.profiles == nil {
		return
	}
	for i := range shows {
		s := &shows[i]
		if s.DJUsername == "" {
			continue
		}
		if s.DJPhotoURL != "" && s.City != "" && s.Genres != "" {
			continue
		}
		profile, err := h.profiles.Get(s.DJUsername)
		if err != nil || profile == nil {
			continue
		}
		if s.DJPhotoURL == "" {
			s.DJPhotoURL = profile.PhotoURL
		}
		if s.City == "" {
			s.City = profile.City
		}
		if s.Genres == "" && len(profile.Genres) > 0 {
			s.Genres = strings.Join(profile.Genres, ",")
		}
	}
}
