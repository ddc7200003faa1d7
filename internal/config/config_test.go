package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"THREATLINK_BACKEND_URL", "THREATLINK_DB_URL", "THREATLINK_DB_KEY",
		"THREATLINK_CACHE_PATH", "THREATLINK_LOG_PATH",
		"THREATLINK_LOCATION_CMD", "THREATLINK_ORIENTATION_CMD",
		"THREATLINK_FIX_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("default backend URL = %q", cfg.BackendURL)
	}
	if cfg.LocationCmd != "termux-location" {
		t.Errorf("default location command = %q", cfg.LocationCmd)
	}
	if cfg.FixTimeout != 10*time.Second {
		t.Errorf("default fix timeout = %v", cfg.FixTimeout)
	}
	if cfg.CachePath == "" || cfg.LogPath == "" {
		t.Errorf("cache/log paths should always resolve: %q, %q", cfg.CachePath, cfg.LogPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("THREATLINK_BACKEND_URL", "http://box.local:9000")
	t.Setenv("THREATLINK_DB_URL", "https://db.example.com")
	t.Setenv("THREATLINK_DB_KEY", "key-123")
	t.Setenv("THREATLINK_CACHE_PATH", "/tmp/tl/cache.db")
	t.Setenv("THREATLINK_LOG_PATH", "")
	t.Setenv("THREATLINK_LOCATION_CMD", "gpspipe -w -n 1")
	t.Setenv("THREATLINK_FIX_TIMEOUT_SECONDS", "25")

	cfg := Load()
	if cfg.BackendURL != "http://box.local:9000" {
		t.Errorf("backend URL = %q", cfg.BackendURL)
	}
	if cfg.PersistenceURL != "https://db.example.com" || cfg.PersistenceKey != "key-123" {
		t.Errorf("persistence config = %q / %q", cfg.PersistenceURL, cfg.PersistenceKey)
	}
	if cfg.LogPath != "/tmp/tl/threatlink.log" {
		t.Errorf("log path should default next to the cache, got %q", cfg.LogPath)
	}
	if cfg.LocationCmd != "gpspipe -w -n 1" {
		t.Errorf("location command = %q", cfg.LocationCmd)
	}
	if cfg.FixTimeout != 25*time.Second {
		t.Errorf("fix timeout = %v", cfg.FixTimeout)
	}
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv("THREATLINK_FIX_TIMEOUT_SECONDS", "not-a-number")
	if cfg := Load(); cfg.FixTimeout != 10*time.Second {
		t.Errorf("bad timeout should keep the default, got %v", cfg.FixTimeout)
	}
	t.Setenv("THREATLINK_FIX_TIMEOUT_SECONDS", "-5")
	if cfg := Load(); cfg.FixTimeout != 10*time.Second {
		t.Errorf("negative timeout should keep the default, got %v", cfg.FixTimeout)
	}
}
