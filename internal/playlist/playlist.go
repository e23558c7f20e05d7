// Package playlist holds the core data model: tracks, ordered playlists and
// the derived operations (artist frequency, durations, intersection) the
// rest of the tool is built on.
package playlist

// Playlist is an ordered collection of tracks with a label used to name
// derived artifacts. The track order always reflects source order; nothing
// here de-duplicates unless explicitly computed (Intersection).
type Playlist struct {
	Tag    string
	Tracks []Track
}

// New builds a playlist over the given tracks. The slice is owned by the
// playlist afterwards; callers must not keep mutating it.
func New(tag string, tracks []Track) Playlist {
	return Playlist{Tag: tag, Tracks: tracks}
}

// Len returns the number of tracks.
func (p Playlist) Len() int { return len(p.Tracks) }

// ArtistFrequency groups tracks by artist and counts them. The sum of all
// counts equals Len.
func (p Playlist) ArtistFrequency() map[string]int {
	counts := make(map[string]int, len(p.Tracks))
	for _, t := range p.Tracks {
		counts[t.Artist]++
	}
	return counts
}

// Durations returns the track durations in seconds, in playlist order.
func (p Playlist) Durations() []float64 {
	ds := make([]float64, len(p.Tracks))
	for i, t := range p.Tracks {
		ds[i] = float64(t.Duration)
	}
	return ds
}

// Intersection returns a new playlist with the tracks present in both a and
// b under Track.Key identity, preserving a's order and emitting each track
// of a at most once. Neither input is modified. An empty result is a valid
// playlist, not an error.
func Intersection(a, b Playlist) Playlist {
	keys := make(map[string]struct{}, len(b.Tracks))
	for _, t := range b.Tracks {
		keys[t.Key()] = struct{}{}
	}

	var common []Track
	seen := make(map[string]struct{})
	for _, t := range a.Tracks {
		k := t.Key()
		if _, ok := keys[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		common = append(common, t)
	}

	return Playlist{Tag: a.Tag + "_" + b.Tag, Tracks: common}
}
