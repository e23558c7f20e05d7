// Package source defines the capability interfaces behind which the
// external services sit, so callers and tests never depend on a concrete
// API client.
package source

import (
	"context"

	"playlens/internal/playlist"
)

// PlaylistSource fetches a complete playlist from an external catalog.
// Implementations must return every track in service-provided order.
type PlaylistSource interface {
	// Playlist resolves urlOrID to a playlist tagged tag.
	Playlist(ctx context.Context, urlOrID, tag string) (playlist.Playlist, error)
}

// LyricsSource fetches the lyrics text for a single song.
type LyricsSource interface {
	// Lyrics returns the lyrics for title by artist, or ErrLyricsNotFound
	// when the service has no match.
	Lyrics(ctx context.Context, title, artist string) (string, error)
}
