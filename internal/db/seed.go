package database

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"channel-radio/internal/models"
)

// SeedDemoShows populates an empty database with a small broadcast day so a
// fresh install renders something. Upserts on ID, so re-running is safe.
func SeedDemoShows(db *gorm.DB) {
	today := time.Now()
	at := func(hour, min int) time.Time {
		return time.Date(today.Year(), today.Month(), today.Day(), hour, min, 0, 0, today.Location())
	}

	shows := []models.Show{
		{
			ID:         "demo-morning-mix",
			Name:       "Morning Mix",
			Status:     models.StatusScheduled,
			ShowType:   models.TypeLive,
			StationID:  "channel-1",
			StartTime:  at(9, 0),
			EndTime:    at(11, 0),
			DJName:     "Sasha Reyes",
			DJUsername: "sashareyes",
			City:       "Berlin",
			Genres:     "House,Disco",
			Cadence:    models.CadenceWeekly,
			DJPhotoURL: "https://images.example.com/djs/sashareyes.jpg",
		},
		{
			ID:         "demo-drive-time",
			Name:       "Drive Time",
			Status:     models.StatusScheduled,
			ShowType:   models.TypeLive,
			StationID:  "channel-1",
			StartTime:  at(17, 0),
			EndTime:    at(19, 0),
			DJName:     "Moe Kanto",
			DJUsername: "moekanto",
			City:       "Tokyo",
			Genres:     "Electronic",
			Cadence:    models.CadenceBiweekly,
			ImageURL:   "https://images.example.com/shows/drive-time.jpg",
		},
		{
			ID:        "demo-club-hour",
			Name:      "Club Hour",
			Status:    models.StatusScheduled,
			ShowType:  models.TypeLive,
			StationID: "channel-2",
			StartTime: at(22, 0),
			EndTime:   at(23, 30),
			DJName:    "Rotating Residents",
			DJUserID:  "club-hour-crew",
			Genres:    "Techno",
			Cadence:   models.CadenceMonthly,
			ImageURL:  "https://images.example.com/shows/club-hour.jpg",
			Slots: []models.DJSlot{
				{ID: "demo-club-hour-a", DJName: "Bea", DJUsername: "bea", StartTime: at(22, 0), EndTime: at(23, 0)},
				{ID: "demo-club-hour-b", DJName: "Cato", DJUsername: "cato", StartTime: at(23, 0), EndTime: at(23, 30)},
			},
		},
		{
			ID:        "demo-overnight-replay",
			Name:      "Overnight Replay",
			Status:    models.StatusScheduled,
			ShowType:  models.TypeRestream,
			StationID: "channel-2",
			StartTime: at(23, 30),
			EndTime:   at(23, 59),
			Cadence:   models.CadenceOneTime,
		},
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&shows)

	if result.Error != nil {
		log.Printf("⚠️ Seeding demo shows failed: %v", result.Error)
		return
	}
	log.Printf("🌱 Seeded %d demo shows", result.RowsAffected)
}
