package config

import "testing"

func TestLoadAppComposesSections(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/bingo?sslmode=disable")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("LoadApp() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Server.DefaultTimeZone != "America/Denver" {
		t.Fatalf("Server.DefaultTimeZone = %q", cfg.Server.DefaultTimeZone)
	}
}

func TestLoadAppRejectsUnknownTimeZone(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/bingo?sslmode=disable")
	t.Setenv("DEFAULT_TIME_ZONE", "Mars/Olympus_Mons")

	if _, err := LoadApp(); err == nil {
		t.Fatal("LoadApp() expected error for unknown zone")
	}
}

func TestServerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServerConfig
		wantErr bool
	}{
		{name: "ok", cfg: ServerConfig{DefaultTimeZone: "UTC", MaxPlaylistNumber: 20, EventStartHour: 19}},
		{name: "zero playlists", cfg: ServerConfig{DefaultTimeZone: "UTC", MaxPlaylistNumber: 0, EventStartHour: 19}, wantErr: true},
		{name: "hour too large", cfg: ServerConfig{DefaultTimeZone: "UTC", MaxPlaylistNumber: 20, EventStartHour: 24}, wantErr: true},
		{name: "bad zone", cfg: ServerConfig{DefaultTimeZone: "Nowhere/Land", MaxPlaylistNumber: 20, EventStartHour: 19}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
