// Package parse reads the fixed-format playlist text files: repeating
// five-line records of index, title, artist, album and an M:SS duration.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"playlens/internal/playlist"
)

// linesPerRecord is the block grammar: index, title, artist, album, duration.
const linesPerRecord = 5

// Error describes a malformed record in the input file.
type Error struct {
	Record int // 1-based record number
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse: record %d: %s", e.Record, e.Reason)
}

// File parses the playlist file at path. See Reader.
func File(path, tag string) (playlist.Playlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return playlist.Playlist{}, fmt.Errorf("parse: open %s: %w", path, err)
	}
	defer f.Close()
	return Reader(f, tag)
}

// Reader parses playlist records from r into a playlist tagged tag. Blank
// lines are ignored; every run of five non-blank lines is one record. An
// incomplete trailing record or an unparseable duration yields *Error.
func Reader(r io.Reader, tag string) (playlist.Playlist, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return playlist.Playlist{}, fmt.Errorf("parse: read input: %w", err)
	}

	var tracks []playlist.Track
	for i := 0; i < len(lines); i += linesPerRecord {
		record := (i / linesPerRecord) + 1
		if len(lines)-i < linesPerRecord {
			return playlist.Playlist{}, &Error{
				Record: record,
				Reason: fmt.Sprintf("incomplete entry, got %d of %d lines", len(lines)-i, linesPerRecord),
			}
		}

		// lines[i] is the track index within the file; parsed but not kept.
		title, artist, album, raw := lines[i+1], lines[i+2], lines[i+3], lines[i+4]

		seconds, err := Duration(raw)
		if err != nil {
			return playlist.Playlist{}, &Error{Record: record, Reason: err.Error()}
		}

		tracks = append(tracks, playlist.Track{
			Title:    title,
			Artist:   artist,
			Album:    album,
			Duration: seconds,
		})
	}

	return playlist.New(tag, tracks), nil
}

// Duration converts an M:SS string into total seconds.
func Duration(raw string) (int, error) {
	minutes, seconds, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, fmt.Errorf("duration %q is not in M:SS form", raw)
	}
	m, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil {
		return 0, fmt.Errorf("duration %q has a non-numeric minutes segment", raw)
	}
	s, err := strconv.Atoi(strings.TrimSpace(seconds))
	if err != nil {
		return 0, fmt.Errorf("duration %q has a non-numeric seconds segment", raw)
	}
	return m*60 + s, nil
}
