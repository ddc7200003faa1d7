package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds client configuration
type Config struct {
	BackendURL     string        // heatmap + photo capture service
	PersistenceURL string        // hosted database REST endpoint
	PersistenceKey string        // API key for the hosted database (a JWT)
	CachePath      string        // local sqlite cache file
	LogPath        string        // log file (stdout belongs to the TUI)
	LocationCmd    string        // platform command producing one position fix
	OrientationCmd string        // platform command streaming orientation events
	FixTimeout     time.Duration // bound on a single position fix
}

// Load reads configuration from the environment, with a best-effort .env file
func Load() *Config {
	// Missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	backendURL := os.Getenv("THREATLINK_BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}

	persistenceURL := os.Getenv("THREATLINK_DB_URL")
	persistenceKey := os.Getenv("THREATLINK_DB_KEY")

	cachePath := os.Getenv("THREATLINK_CACHE_PATH")
	if cachePath == "" {
		cachePath = defaultCachePath()
	}

	logPath := os.Getenv("THREATLINK_LOG_PATH")
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(cachePath), "threatlink.log")
	}

	locationCmd := os.Getenv("THREATLINK_LOCATION_CMD")
	if locationCmd == "" {
		locationCmd = "termux-location"
	}

	orientationCmd := os.Getenv("THREATLINK_ORIENTATION_CMD")

	fixTimeout := 10 * time.Second
	if raw := os.Getenv("THREATLINK_FIX_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			fixTimeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		BackendURL:     backendURL,
		PersistenceURL: persistenceURL,
		PersistenceKey: persistenceKey,
		CachePath:      cachePath,
		LogPath:        logPath,
		LocationCmd:    locationCmd,
		OrientationCmd: orientationCmd,
		FixTimeout:     fixTimeout,
	}
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./threatlink.db"
	}
	return filepath.Join(home, ".threatlink", "cache.db")
}
