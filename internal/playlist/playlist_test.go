package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tr(title, artist string) Track {
	return Track{Title: title, Artist: artist, Album: "album", Duration: 200}
}

func TestTrackKeyNormalization(t *testing.T) {
	assert.Equal(t, "song a|artist1", tr("Song A", "Artist1").Key())
	assert.Equal(t, tr("  Song   A ", "ARTIST1").Key(), tr("song a", "artist1").Key())
	assert.True(t, tr("Song A", "Artist1").Same(tr("SONG A", "artist1")))
	assert.False(t, tr("Song A", "Artist1").Same(tr("Song A", "Artist2")))
}

func TestArtistFrequency(t *testing.T) {
	p := New("mix", []Track{tr("a", "X"), tr("b", "X"), tr("c", "Y")})

	freq := p.ArtistFrequency()
	assert.Equal(t, map[string]int{"X": 2, "Y": 1}, freq)

	total := 0
	for _, n := range freq {
		total += n
	}
	assert.Equal(t, p.Len(), total)
}

func TestDurationsPreserveOrder(t *testing.T) {
	p := New("mix", []Track{
		{Title: "a", Artist: "X", Duration: 225},
		{Title: "b", Artist: "Y", Duration: 200},
	})
	assert.Equal(t, []float64{225, 200}, p.Durations())
}

func TestIntersection(t *testing.T) {
	a := New("ryan", []Track{tr("one", "X"), tr("two", "Y"), tr("three", "Z")})
	b := New("rachel", []Track{tr("THREE", "z"), tr("two", "Y"), tr("four", "W")})

	got := Intersection(a, b)
	assert.Equal(t, "ryan_rachel", got.Tag)
	// a's order, not b's
	assert.Equal(t, []Track{tr("two", "Y"), tr("three", "Z")}, got.Tracks)
}

func TestIntersectionCommutativeContent(t *testing.T) {
	a := New("a", []Track{tr("one", "X"), tr("two", "Y")})
	b := New("b", []Track{tr("two", "Y"), tr("three", "Z")})

	ab := Intersection(a, b)
	ba := Intersection(b, a)

	keysOf := func(p Playlist) map[string]struct{} {
		m := make(map[string]struct{})
		for _, t := range p.Tracks {
			m[t.Key()] = struct{}{}
		}
		return m
	}
	assert.Equal(t, keysOf(ab), keysOf(ba))
}

func TestIntersectionWithSelf(t *testing.T) {
	a := New("a", []Track{tr("one", "X"), tr("two", "Y")})
	got := Intersection(a, a)
	assert.Equal(t, a.Tracks, got.Tracks)
}

func TestIntersectionEmpty(t *testing.T) {
	a := New("a", []Track{tr("one", "X")})
	empty := New("e", nil)

	assert.Zero(t, Intersection(a, empty).Len())
	assert.Zero(t, Intersection(empty, a).Len())
	assert.Zero(t, Intersection(a, New("b", []Track{tr("other", "Q")})).Len())
}

func TestIntersectionDedupesRepeats(t *testing.T) {
	a := New("a", []Track{tr("one", "X"), tr("one", "X")})
	b := New("b", []Track{tr("one", "X")})
	assert.Equal(t, 1, Intersection(a, b).Len())
}
