// Package render turns computed statistics into image artifacts. The
// Renderer interface keeps the statistics and orchestration code testable
// without writing real files.
package render

import "path/filepath"

// Artifact name suffixes, appended to the playlist tag.
const (
	suffixArtistBar  = "_artist_frequency_bar.png"
	suffixArtistDist = "_artist_frequency_dist.png"
	suffixBox        = "_duration_box.png"
	suffixVenn       = "_venn.png"
	suffixWordCloud  = "_wordCloud.png"
)

// Renderer renders the tool's visualizations. Every method returns the path
// of the artifact it wrote.
type Renderer interface {
	// ArtistBar draws songs-per-artist as a bar chart. artists and counts
	// are parallel slices, already ordered.
	ArtistBar(tag string, artists []string, counts []float64) (string, error)

	// FrequencyDist draws the distribution of artist frequencies:
	// songs-per-artist on X, number of artists on Y.
	FrequencyDist(tag string, dist map[int]int) (string, error)

	// DurationBox draws a boxplot of track durations in seconds.
	DurationBox(tag string, durations []float64) (string, error)

	// Venn draws a two-set diagram with the exclusive and shared counts.
	Venn(tag, labelA, labelB string, onlyA, onlyB, both int) (string, error)

	// WordCloud draws a word cloud from word frequencies.
	WordCloud(tag string, counts map[string]int) (string, error)
}

// Images is the production Renderer, writing PNG files into Dir.
type Images struct {
	Dir      string
	FontFile string // TTF used by the word cloud
}

// NewImages returns an Images renderer writing into dir.
func NewImages(dir, fontFile string) *Images {
	return &Images{Dir: dir, FontFile: fontFile}
}

func (r *Images) artifact(tag, suffix string) string {
	return filepath.Join(r.Dir, tag+suffix)
}
