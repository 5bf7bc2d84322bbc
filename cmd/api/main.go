package main

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"channel-radio/internal/api/handlers"
	"channel-radio/internal/config"
	database "channel-radio/internal/db"
	"channel-radio/internal/genres"
	"channel-radio/internal/profiles"
	"channel-radio/internal/stations"

	// Use an alias to prevent naming collisions with the 'server' variable
	apiserver "channel-radio/internal/api/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Channel API Server...")

	// 1. Setup Configuration
	cfg := config.Load()

	// 2. Initialize Infrastructure
	db := database.New(cfg)

	// 3. Run Database Migrations
	db.AutoMigrate()
	// Seed a demo broadcast day so a fresh install renders something
	database.SeedDemoShows(db.DB)

	// 4. Static Tables (station directory + genre aliases)
	directory := loadDirectory(cfg)
	genreTable := loadGenres(cfg)

	// 5. DJ Profile Cache (external profile service, optional)
	profileCache := buildProfileCache(cfg)

	// 6. Setup Metrics
	handlers.RegisterMetrics()
	go func() {
		http.Handle("/_metrics", promhttp.Handler())
		log.Printf("📊 Metrics exposed at http://localhost%s/_metrics", cfg.Server.MetricsPort)
		if err := http.ListenAndServe(cfg.Server.MetricsPort, nil); err != nil {
			log.Printf("⚠️ Metrics server error: %v", err)
		}
	}()

	// 7. Start Server
	srv := apiserver.New(cfg, db, directory, genreTable, profileCache)

	log.Printf("🚀 API Server starting on %s", cfg.Server.Port)

	if err := srv.Start(cfg.Server.Port); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}

func buildProfileCache(cfg *config.Config) *profiles.Cache {
	ttl, err := time.ParseDuration(cfg.Profiles.CacheTTL)
	if err != nil {
		ttl = 10 * time.Minute
	}

	if cfg.Profiles.ServiceURL == "" {
		log.Println("Info: no profile service configured, shows render with feed data only.")
		return profiles.NewCache(profiles.NoLookup, ttl)
	}
	return profiles.NewCache(profiles.HTTPLookup(cfg.Profiles.ServiceURL), ttl)
}

func loadDirectory(cfg *config.Config) *stations.Directory {
	if cfg.Directory.StationsPath == "" {
		return stations.New(defaultStations)
	}
	dir, err := stations.Load(cfg.Directory.StationsPath)
	if err != nil {
		log.Printf("⚠️ Failed to load stations file, using built-in directory: %v", err)
		return stations.New(defaultStations)
	}
	log.Printf("📻 Station directory loaded: %d stations", len(dir.All()))
	return dir
}

func loadGenres(cfg *config.Config) *genres.Table {
	if cfg.Directory.GenresPath == "" {
		return genres.Default()
	}
	table, err := genres.Load(cfg.Directory.GenresPath)
	if err != nil {
		log.Printf("⚠️ Failed to load genres file, using built-in aliases: %v", err)
		return genres.Default()
	}
	return table
}

// defaultStations is the built-in directory for single-station installs.
var defaultStations = []stations.Station{
	{ID: "channel-1", MetadataKey: "ch1", Name: "Channel One", AccentColor: "#3182ce"},
	{ID: "channel-2", MetadataKey: "ch2", Name: "Channel Two", AccentColor: "#d69e2e"},
}
