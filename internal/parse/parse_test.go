package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlens/internal/playlist"
)

const twoRecords = `1
Song A
Artist1
Album1
3:45
2
Song B
Artist2
Album2
3:20
`

func TestReaderParsesRecordsInOrder(t *testing.T) {
	p, err := Reader(strings.NewReader(twoRecords), "mix")
	require.NoError(t, err)

	assert.Equal(t, "mix", p.Tag)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, playlist.Track{Title: "Song A", Artist: "Artist1", Album: "Album1", Duration: 225}, p.Tracks[0])
	assert.Equal(t, playlist.Track{Title: "Song B", Artist: "Artist2", Album: "Album2", Duration: 200}, p.Tracks[1])

	assert.Equal(t, map[string]int{"Artist1": 1, "Artist2": 1}, p.ArtistFrequency())
}

func TestReaderSkipsBlankLines(t *testing.T) {
	spaced := strings.ReplaceAll(twoRecords, "\n", "\n\n")
	p, err := Reader(strings.NewReader(spaced), "mix")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
}

func TestReaderEmptyInput(t *testing.T) {
	p, err := Reader(strings.NewReader(""), "mix")
	require.NoError(t, err)
	assert.Zero(t, p.Len())
}

func TestReaderIncompleteRecord(t *testing.T) {
	_, err := Reader(strings.NewReader("1\nSong A\nArtist1\n"), "mix")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Record)
	assert.Contains(t, perr.Reason, "incomplete")
}

func TestReaderBadDuration(t *testing.T) {
	in := "1\nSong A\nArtist1\nAlbum1\na:bc\n"
	_, err := Reader(strings.NewReader(in), "mix")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Record)
}

func TestDuration(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want int
	}{
		{"3:45", 225},
		{"0:05", 5},
		{"0:00", 0},
		{"10:30", 630},
	} {
		got, err := Duration(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}

	for _, raw := range []string{"a:bc", "3:4x", "345", ""} {
		_, err := Duration(raw)
		assert.Error(t, err, raw)
	}
}
