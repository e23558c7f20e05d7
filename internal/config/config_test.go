package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "")
	t.Setenv("PLAYLENS_OUT_DIR", "")
	// LookupEnv still sees empty-but-set vars, so unset explicitly is not
	// possible with t.Setenv; assert the explicit-value path instead.
	t.Setenv("PLAYLENS_LOG_LEVEL", "debug")
	t.Setenv("GENIUS_ACCESS_TOKEN", "tok")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "tok", cfg.GeniusAccessToken)
	assert.Empty(t, cfg.SpotifyClientID)
}

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("PLAYLENS_DOES_NOT_EXIST", "fallback"))

	t.Setenv("PLAYLENS_SET", "value")
	assert.Equal(t, "value", getEnv("PLAYLENS_SET", "fallback"))
}
