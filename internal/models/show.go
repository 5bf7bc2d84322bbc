package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Show status values reported by the broadcast backend.
const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusEnded     = "ended"
)

// Presentational show types. Playlist and restream entries are machine-run
// rebroadcasts and are hidden from profile-gated discovery views.
const (
	TypeLive     = "live"
	TypePlaylist = "playlist"
	TypeRestream = "restream"
)

// Recurrence cadence tags set by the program director.
const (
	CadenceWeekly   = "weekly"
	CadenceBiweekly = "biweekly"
	CadenceMonthly  = "monthly"
	CadenceOneTime  = "one_time"
)

// Show represents a single scheduled or live broadcast entry
type Show struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string `json:"name" gorm:"not null;index"`
	Status    string `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	ShowType  string `json:"show_type" gorm:"type:varchar(20);default:'live'"`
	StationID string `json:"station_id" gorm:"index"`

	StartTime time.Time `json:"start_time" gorm:"index;not null"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`

	// DJ identity (resolved from the external profile service at ingest time)
	DJName     string `json:"dj_name"`
	DJUsername string `json:"dj_username" gorm:"index"`
	DJUserID   string `json:"dj_user_id"`
	DJEmail    string `json:"dj_email"`

	City    string `json:"city"`
	Genres  string `json:"genres"`  // Comma-separated: "House,Disco"
	Cadence string `json:"cadence"` // weekly, biweekly, monthly, one_time

	ImageURL   string `json:"image_url"`
	DJPhotoURL string `json:"dj_photo_url"`

	Slots []DJSlot `json:"dj_slots" gorm:"foreignKey:ShowID"`
}

// DJSlot is one DJ's turn inside a multi-DJ show. Slot intervals fall within
// the parent show's interval but need not tile it.
type DJSlot struct {
	ID     string `gorm:"primaryKey" json:"id"`
	ShowID string `gorm:"index;not null" json:"show_id"`

	DJName     string `json:"dj_name"`
	DJUsername string `json:"dj_username"`

	StartTime time.Time `json:"start_time" gorm:"not null"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`
}

// HasDJIdentity reports whether the show carries enough DJ identity to be
// shown in profile-gated views: a display name plus a username or user id.
func (s *Show) HasDJIdentity() bool {
	return s.DJName != "" && (s.DJUsername != "" || s.DJUserID != "")
}

// HasImage reports whether there is anything to render in a carousel card.
func (s *Show) HasImage() bool {
	return s.DJPhotoURL != "" || s.ImageURL != ""
}

// IsRebroadcast reports whether the show is a machine-run playlist/restream.
func (s *Show) IsRebroadcast() bool {
	t := strings.ToLower(s.ShowType)
	return t == TypePlaylist || t == TypeRestream
}

// GenreList splits the comma-separated Genres field into trimmed tags.
func (s *Show) GenreList() []string {
	var result []string
	if s.Genres == "" {
		return result
	}
	for _, str := range strings.Split(s.Genres, ",") {
		if trimmed := strings.TrimSpace(str); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
