package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type PlayerConfig struct {
	ServerURL     string        `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	EventCode     string        `env:"EVENT_CODE,required,notEmpty"`
	PlaylistsFile string        `env:"PLAYLISTS_FILE,required,notEmpty"`
	DeviceDB      string        `env:"DEVICE_DB" envDefault:"bingo-device.db"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"5s"`
}

func LoadPlayer() (PlayerConfig, error) {
	var cfg PlayerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
