package config

import (
	"testing"
	"time"
)

func TestLoadPlayerDefaults(t *testing.T) {
	t.Setenv("EVENT_CODE", "pub-x--2025-12-22")
	t.Setenv("PLAYLISTS_FILE", "playlists.json")

	cfg, err := LoadPlayer()
	if err != nil {
		t.Fatalf("LoadPlayer() error = %v", err)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Fatalf("ServerURL = %q, want http://localhost:8080", cfg.ServerURL)
	}
	if cfg.DeviceDB != "bingo-device.db" {
		t.Fatalf("DeviceDB = %q, want bingo-device.db", cfg.DeviceDB)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
}

func TestLoadPlayerOverrides(t *testing.T) {
	t.Setenv("SERVER_URL", "http://127.0.0.1:9000")
	t.Setenv("EVENT_CODE", "pub-y--2026-01-06")
	t.Setenv("PLAYLISTS_FILE", "/tmp/p.json")
	t.Setenv("HTTP_TIMEOUT", "2s")

	cfg, err := LoadPlayer()
	if err != nil {
		t.Fatalf("LoadPlayer() error = %v", err)
	}
	if cfg.ServerURL != "http://127.0.0.1:9000" || cfg.EventCode != "pub-y--2026-01-06" {
		t.Fatalf("unexpected player config: %+v", cfg)
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadPlayerRequiresEventCode(t *testing.T) {
	t.Setenv("EVENT_CODE", "")
	t.Setenv("PLAYLISTS_FILE", "playlists.json")

	if _, err := LoadPlayer(); err == nil {
		t.Fatal("LoadPlayer() expected error, got nil")
	}
}
