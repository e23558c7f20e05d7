// Package analyze ties the playlist model to the lyrics source and the
// renderer: it computes what each visualization needs and hands it over.
package analyze

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"playlens/internal/playlist"
	"playlens/internal/render"
	"playlens/internal/source"
	"playlens/internal/stats"
)

// Analyzer renders playlist statistics through an injected Renderer.
// Playlists are never mutated.
type Analyzer struct {
	renderer render.Renderer
	lyrics   source.LyricsSource
	log      *zap.Logger
}

// New returns an Analyzer. lyrics may be nil when no word cloud will be
// requested.
func New(renderer render.Renderer, lyrics source.LyricsSource, log *zap.Logger) *Analyzer {
	return &Analyzer{renderer: renderer, lyrics: lyrics, log: log}
}

// ArtistFrequencyBar renders absolute songs-per-artist counts, ascending.
func (a *Analyzer) ArtistFrequencyBar(p playlist.Playlist) (string, error) {
	counts := p.ArtistFrequency()
	artists := stats.SortedKeys(counts)
	values := make([]float64, len(artists))
	for i, artist := range artists {
		values[i] = float64(counts[artist])
	}
	return a.renderer.ArtistBar(p.Tag, artists, values)
}

// ArtistFrequencyDist renders the distribution of artist frequencies.
func (a *Analyzer) ArtistFrequencyDist(p playlist.Playlist) (string, error) {
	return a.renderer.FrequencyDist(p.Tag, stats.FrequencyOfFrequencies(p.ArtistFrequency()))
}

// DurationBox renders the duration boxplot and logs the five-number summary.
func (a *Analyzer) DurationBox(p playlist.Playlist) (string, error) {
	durations := p.Durations()
	summary, err := stats.Summary(durations)
	if err != nil {
		return "", err
	}
	a.log.Info("duration summary",
		zap.String("tag", p.Tag),
		zap.Float64("min", summary.Min),
		zap.Float64("median", summary.Median),
		zap.Float64("max", summary.Max),
		zap.Int("outliers", len(summary.Outliers)))

	return a.renderer.DurationBox(p.Tag, durations)
}

// Intersect computes the intersection of two playlists and renders the
// matching Venn diagram. Inputs are left untouched; an empty intersection
// is a normal result. The intersection is returned even when the Venn
// render fails, so callers keep the set result alongside the error.
func (a *Analyzer) Intersect(p1, p2 playlist.Playlist) (playlist.Playlist, string, error) {
	common := playlist.Intersection(p1, p2)

	artifact, err := a.renderer.Venn(
		common.Tag,
		p1.Tag, p2.Tag,
		p1.Len()-common.Len(),
		p2.Len()-common.Len(),
		common.Len(),
	)
	if err != nil {
		return common, "", err
	}
	return common, artifact, nil
}

// WordCloudReport describes a word-cloud run: the written artifact, every
// track whose lyrics lookup missed, and how many distinct words survived
// the stopword filter.
type WordCloudReport struct {
	Artifact string
	Skipped  []playlist.Track
	Words    int
}

// WordCloud fetches lyrics for each distinct track of p, aggregates the
// filtered words and renders the cloud. Lyrics misses are non-fatal: the
// track is skipped, recorded in the report and logged. Any other lookup
// failure aborts the run. A playlist whose every lookup misses still
// produces an artifact.
func (a *Analyzer) WordCloud(ctx context.Context, p playlist.Playlist) (WordCloudReport, error) {
	var report WordCloudReport
	counts := make(map[string]int)

	seen := make(map[string]struct{})
	for _, t := range p.Tracks {
		if _, dup := seen[t.Key()]; dup {
			continue
		}
		seen[t.Key()] = struct{}{}

		lyrics, err := a.lyrics.Lyrics(ctx, t.Title, t.Artist)
		if errors.Is(err, source.ErrLyricsNotFound) {
			a.log.Warn("lyrics not found, skipping track",
				zap.String("title", t.Title),
				zap.String("artist", t.Artist))
			report.Skipped = append(report.Skipped, t)
			continue
		}
		if err != nil {
			return WordCloudReport{}, err
		}
		addWords(counts, lyrics)
	}

	artifact, err := a.renderer.WordCloud(p.Tag, counts)
	if err != nil {
		return WordCloudReport{}, err
	}
	report.Artifact = artifact
	report.Words = len(counts)
	return report, nil
}

var nonWord = regexp.MustCompile(`\W`)

// addWords folds the lyrics text into counts, lowercased, stripped of
// non-word runes and filtered against the stopword set.
func addWords(counts map[string]int, lyrics string) {
	for _, raw := range strings.Fields(lyrics) {
		w := strings.ToLower(nonWord.ReplaceAllString(raw, ""))
		if w == "" {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		counts[w]++
	}
}
