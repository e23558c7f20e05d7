// Package config loads the tool's configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries every externally supplied setting. Credentials are not
// validated here; each adapter reports an auth error at the point of use so
// file-only workflows never need Spotify or Genius credentials.
type Config struct {
	SpotifyClientID     string
	SpotifyClientSecret string
	GeniusAccessToken   string

	OutputDir      string // directory image artifacts are written to
	LyricsCacheDir string // on-disk lyrics cache, empty disables caching
	WordCloudFont  string // TTF used by the word-cloud renderer

	LogLevel string
	LogFile  string // empty logs to stderr only
}

// Load reads configuration from the environment, first merging a .env file
// if one is present. Existing environment variables are never overridden.
func Load() *Config {
	// Best effort: running without a .env file is normal.
	_ = godotenv.Load()

	return &Config{
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		GeniusAccessToken:   os.Getenv("GENIUS_ACCESS_TOKEN"),
		OutputDir:           getEnv("PLAYLENS_OUT_DIR", "."),
		LyricsCacheDir:      getEnv("PLAYLENS_LYRICS_CACHE", "lyrics_cache"),
		WordCloudFont:       getEnv("PLAYLENS_WORDCLOUD_FONT", "fonts/Roboto-Regular.ttf"),
		LogLevel:            getEnv("PLAYLENS_LOG_LEVEL", "info"),
		LogFile:             os.Getenv("PLAYLENS_LOG_FILE"),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
