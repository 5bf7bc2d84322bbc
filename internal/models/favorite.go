package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite is a listener's saved interest in a DJ or show name.
// A favorite with a StationID is "station-scoped": it only matches shows on
// that station, by exact name. An unscoped favorite matches any show whose
// name or DJ name contains the term as a whole word.
type Favorite struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `json:"user_id" gorm:"index;not null"`
	Term   string `json:"term" gorm:"not null"`

	StationID string `json:"station_id"` // empty = unscoped
	ShowName  string `json:"show_name"`  // cached at save time for scoped matching
}
