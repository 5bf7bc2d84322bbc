package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"channel-radio/internal/config"
	database "channel-radio/internal/db"
	"channel-radio/internal/genres"
	"channel-radio/internal/profiles"
	"channel-radio/internal/schedule"
	"channel-radio/internal/stations"

	"channel-radio/internal/api/handlers"
	"channel-radio/internal/api/middleware"
)

type Server struct {
	cfg        *config.Config
	db         *database.Client
	directory  *stations.Directory
	genreTable *genres.Table
	profiles   *profiles.Cache
	router     *gin.Engine
}

func New(cfg *config.Config, db *database.Client, dir *stations.Directory, table *genres.Table, cache *profiles.Cache) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode) // Set to Release for production
	}

	router := gin.New()
	router.Use(middleware.SilentLogger(), gin.Recovery())

	s := &Server{
		cfg:        cfg,
		db:         db,
		directory:  dir,
		genreTable: table,
		profiles:   cache,
		router:     router,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	// CORS Configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}

	// "Authorization" must be allowed so the web client can send its JWT
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	secret := []byte(s.cfg.Auth.JWTSecret)

	layout := schedule.Layout{
		HourHeight:     s.cfg.Grid.HourHeight,
		MinBlockHeight: s.cfg.Grid.MinBlockHeight,
	}

	// 1. Initialize Modular Handlers
	showHandler := handlers.NewShowHandler(s.db.DB)
	scheduleHandler := handlers.NewScheduleHandler(s.db.DB, layout)
	sectionsHandler := handlers.NewSectionsHandler(s.db.DB, s.directory, s.genreTable, s.profiles, s.cfg.Sections.Cap)
	favoriteHandler := handlers.NewFavoriteHandler(s.db.DB)
	stationHandler := handlers.NewStationHandler(s.directory)

	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "channel-radio"})
	})

	// API Group
	v1 := s.router.Group("/api/v1")
	{
		// ==========================================
		// PUBLIC ROUTES (No Token Required)
		// ==========================================
		v1.GET("/shows", showHandler.GetShows)
		v1.GET("/schedule/grid", scheduleHandler.GetGrid)
		v1.GET("/schedule/now", scheduleHandler.GetNowPlaying)
		v1.GET("/stations", stationHandler.GetStations)

		// Sections personalize ("Who Not To Miss") when a token is present
		v1.GET("/sections", middleware.OptionalAuth(secret), sectionsHandler.GetSections)

		// ==========================================
		// PROTECTED ROUTES (JWT Token Required)
		// ==========================================
		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(secret))
		{
			protected.GET("/favorites", favoriteHandler.GetFavorites)
			protected.POST("/favorites", favoriteHandler.CreateFavorite)
			protected.DELETE("/favorites/:id", favoriteHandler.DeleteFavorite)
		}
	}
}

// Start runs the server on the configured port
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
