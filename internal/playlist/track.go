package playlist

import (
	"fmt"
	"strings"
)

// Track represents a single song's metadata. Tracks are value types and are
// never modified after construction.
type Track struct {
	Title    string
	Artist   string
	Album    string
	Duration int // seconds
}

// Key returns the identity of a track for set operations: title and artist,
// lowercased with runs of whitespace collapsed. Album and duration are
// excluded so the same song matches across releases and remasters.
func (t Track) Key() string {
	return normalize(t.Title) + "|" + normalize(t.Artist)
}

// Same reports whether two tracks are the same song under Key identity.
func (t Track) Same(other Track) bool {
	return t.Key() == other.Key()
}

func (t Track) String() string {
	return fmt.Sprintf("%-40.40s | %-20.20s | %-25.25s | %5ds", t.Title, t.Artist, t.Album, t.Duration)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
