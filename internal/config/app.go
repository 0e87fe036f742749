package config

import (
	"fmt"
	"time"
)

type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	if err := serverCfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Log:    logCfg,
	}, nil
}

// Validate checks values env tags cannot express.
func (c ServerConfig) Validate() error {
	if _, err := time.LoadLocation(c.DefaultTimeZone); err != nil {
		return fmt.Errorf("DEFAULT_TIME_ZONE %q: %w", c.DefaultTimeZone, err)
	}
	if c.MaxPlaylistNumber < 1 {
		return fmt.Errorf("MAX_PLAYLIST_NUMBER must be positive, got %d", c.MaxPlaylistNumber)
	}
	if c.EventStartHour < 0 || c.EventStartHour > 23 {
		return fmt.Errorf("EVENT_START_HOUR must be within 0..23, got %d", c.EventStartHour)
	}
	return nil
}
