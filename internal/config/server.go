package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// DefaultTimeZone applies to venues without a time zone of their own.
	DefaultTimeZone   string `env:"DEFAULT_TIME_ZONE" envDefault:"America/Denver"`
	MaxPlaylistNumber int    `env:"MAX_PLAYLIST_NUMBER" envDefault:"20"`
	EventStartHour    int    `env:"EVENT_START_HOUR" envDefault:"19"`

	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`
	SeedDemo    bool `env:"SEED_DEMO" envDefault:"false"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
