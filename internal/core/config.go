package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the environment-driven settings for the client and the cache.
type Config struct {
	BaseURL        string        `env:"DRAFTSTATS_BASE_URL"`
	CacheDir       string        `env:"DRAFTSTATS_CACHE_DIR"`
	ConnectTimeout time.Duration `env:"DRAFTSTATS_CONNECT_TIMEOUT" envDefault:"5s"`
	ReadTimeout    time.Duration `env:"DRAFTSTATS_READ_TIMEOUT" envDefault:"15s"`
}

// LoadConfig reads configuration from the environment and fills in defaults
// for anything unset. The default cache directory lives under the per-user
// cache root (e.g. ~/.cache/draftstats on Linux).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = APIBaseURL
	}
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = "."
		}
		cfg.CacheDir = filepath.Join(base, "draftstats")
	}
	return cfg, nil
}

// StoragePath returns the location of the persisted cache blob.
func (c Config) StoragePath() string {
	return filepath.Join(c.CacheDir, "storage.json")
}

// NewLogger builds the process logger writing human-readable lines to stderr.
// Debug level is enabled only when verbose is set.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
