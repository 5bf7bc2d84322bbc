package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port        string `mapstructure:"port"`
		MetricsPort string `mapstructure:"metrics_port"`
		LogLevel    string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"` // "sqlite" or "postgres"
		Path     string `mapstructure:"path"`   // sqlite file
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
	Directory struct {
		StationsPath string `mapstructure:"stations_path"` // optional YAML override
		GenresPath   string `mapstructure:"genres_path"`   // optional YAML override
	} `mapstructure:"directory"`
	Grid struct {
		HourHeight     float64 `mapstructure:"hour_height"`
		MinBlockHeight float64 `mapstructure:"min_block_height"`
	} `mapstructure:"grid"`
	Sections struct {
		Cap int `mapstructure:"cap"`
	} `mapstructure:"sections"`
	Profiles struct {
		ServiceURL string `mapstructure:"service_url"` // empty = no enrichment
		CacheTTL   string `mapstructure:"cache_ttl"`   // e.g. "10m"
	} `mapstructure:"profiles"`
}

func Load() *Config {
	viper.SetEnvPrefix("CHANNEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("server.port")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.log_level")

	viper.BindEnv("database.driver")
	viper.BindEnv("database.path")
	viper.BindEnv("database.host")
	viper.BindEnv("database.port")
	viper.BindEnv("database.user")
	viper.BindEnv("database.password")
	viper.BindEnv("database.name")

	viper.BindEnv("auth.jwt_secret")
	viper.BindEnv("directory.stations_path")
	viper.BindEnv("directory.genres_path")
	viper.BindEnv("grid.hour_height")
	viper.BindEnv("grid.min_block_height")
	viper.BindEnv("sections.cap")
	viper.BindEnv("profiles.service_url")
	viper.BindEnv("profiles.cache_ttl")

	// Defaults
	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.log_level", "info")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "channel.db")
	viper.SetDefault("database.port", "5432")

	viper.SetDefault("grid.hour_height", 60)
	viper.SetDefault("grid.min_block_height", 24)
	viper.SetDefault("sections.cap", 4)
	viper.SetDefault("profiles.cache_ttl", "10m")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	if cfg.Database.Driver == "postgres" && cfg.Database.Host == "" {
		log.Fatal("Critical: postgres selected but no host set (CHANNEL_DATABASE_HOST)")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Println("⚠️ No CHANNEL_AUTH_JWT_SECRET set; favorites routes will reject all tokens.")
	}

	return &cfg
}
