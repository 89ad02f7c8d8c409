package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Debug)
	assert.Equal(t, "collapsed", cfg.DefaultState)
	assert.Equal(t, 200*time.Millisecond, cfg.AnimDuration)
	assert.Equal(t, "system", cfg.Theme)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BELLOWS_DEBUG", "true")
	t.Setenv("BELLOWS_LOG_PATH", "/tmp/bellows-test.log")
	t.Setenv("BELLOWS_DEFAULT_STATE", "visible")
	t.Setenv("BELLOWS_ANIM_MS", "350")
	t.Setenv("BELLOWS_THEME", "dark")

	cfg := ConfigFromEnv()

	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/bellows-test.log", cfg.LogPath)
	assert.Equal(t, "visible", cfg.DefaultState)
	assert.Equal(t, 350*time.Millisecond, cfg.AnimDuration)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestConfigFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("BELLOWS_DEBUG", "not-a-bool")
	t.Setenv("BELLOWS_ANIM_MS", "-10")

	cfg := ConfigFromEnv()

	assert.False(t, cfg.Debug)
	assert.Equal(t, 200*time.Millisecond, cfg.AnimDuration)
}

func TestConfigFromEnv_UnknownDefaultStateIsPassedThrough(t *testing.T) {
	// Validation happens at accordion install time, not here: an unknown
	// key must surface as a fatal configuration error, not be silently
	// corrected.
	t.Setenv("BELLOWS_DEFAULT_STATE", "expanded")

	cfg := ConfigFromEnv()

	assert.Equal(t, "expanded", cfg.DefaultState)
}
