package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/bingo?sslmode=disable")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DefaultTimeZone != "America/Denver" {
		t.Fatalf("DefaultTimeZone = %q, want America/Denver", cfg.DefaultTimeZone)
	}
	if cfg.MaxPlaylistNumber != 20 {
		t.Fatalf("MaxPlaylistNumber = %d, want 20", cfg.MaxPlaylistNumber)
	}
	if cfg.EventStartHour != 19 {
		t.Fatalf("EventStartHour = %d, want 19", cfg.EventStartHour)
	}
	if !cfg.AutoMigrate || cfg.SeedDemo {
		t.Fatalf("unexpected migrate/seed defaults: %+v", cfg)
	}
}

func TestLoadServerRequiresPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	_, err := LoadServer()
	if err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/bingo?sslmode=disable")
	t.Setenv("MAX_PLAYLIST_NUMBER", "30")
	t.Setenv("DEFAULT_TIME_ZONE", "America/Chicago")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.MaxPlaylistNumber != 30 {
		t.Fatalf("MaxPlaylistNumber = %d, want 30", cfg.MaxPlaylistNumber)
	}
	if cfg.DefaultTimeZone != "America/Chicago" {
		t.Fatalf("DefaultTimeZone = %q", cfg.DefaultTimeZone)
	}
	if !cfg.SeedDemo || cfg.AutoMigrate {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
}
