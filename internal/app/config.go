package app

import (
	"os"
	"strconv"
	"time"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// LogPath overrides the platform-conventional log file location
	LogPath string

	// DefaultState is the accordion state key applied at initialization
	// ("collapsed" or "visible"). An unknown key is a fatal configuration
	// error surfaced when the accordion is installed.
	DefaultState string

	// AnimDuration is how long an animated panel transition takes
	AnimDuration time.Duration

	// Theme selects the UI theme: "dark", "light", or "system"
	Theme string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		DefaultState: "collapsed",
		AnimDuration: 200 * time.Millisecond,
		Theme:        "system",
	}
}

// ConfigFromEnv creates a configuration from environment variables:
// BELLOWS_DEBUG, BELLOWS_LOG_PATH, BELLOWS_DEFAULT_STATE, BELLOWS_ANIM_MS,
// and BELLOWS_THEME.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("BELLOWS_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if logPath := os.Getenv("BELLOWS_LOG_PATH"); logPath != "" {
		cfg.LogPath = logPath
	}

	if state := os.Getenv("BELLOWS_DEFAULT_STATE"); state != "" {
		cfg.DefaultState = state
	}

	if msStr := os.Getenv("BELLOWS_ANIM_MS"); msStr != "" {
		if ms, err := strconv.Atoi(msStr); err == nil && ms >= 0 {
			cfg.AnimDuration = time.Duration(ms) * time.Millisecond
		}
	}

	if theme := os.Getenv("BELLOWS_THEME"); theme != "" {
		cfg.Theme = theme
	}

	return cfg
}
