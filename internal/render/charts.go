package render

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ArtistBar draws one bar per artist. Callers pass the artists in the order
// they should appear, typically ascending by count.
func (r *Images) ArtistBar(tag string, artists []string, counts []float64) (string, error) {
	if len(artists) != len(counts) {
		return "", fmt.Errorf("render: %d artists vs %d counts", len(artists), len(counts))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s songs per artist (ascending)", tag)
	p.X.Label.Text = "Artist"
	p.Y.Label.Text = "Number of songs"

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(18))
	if err != nil {
		return "", fmt.Errorf("render: artist bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(artists...)
	p.X.Tick.Label.Rotation = 0.8 // radians, keeps long artist names legible
	p.X.Tick.Label.XAlign = -1

	out := r.artifact(tag, suffixArtistBar)
	if err := p.Save(14*vg.Inch, 7*vg.Inch, out); err != nil {
		return "", fmt.Errorf("render: save %s: %w", out, err)
	}
	return out, nil
}

// FrequencyDist draws how many artists contribute 1, 2, ... songs.
func (r *Images) FrequencyDist(tag string, dist map[int]int) (string, error) {
	xs := make([]int, 0, len(dist))
	for x := range dist {
		xs = append(xs, x)
	}
	sort.Ints(xs)

	labels := make([]string, len(xs))
	values := make(plotter.Values, len(xs))
	for i, x := range xs {
		labels[i] = strconv.Itoa(x)
		values[i] = float64(dist[x])
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s distribution of artist frequencies", tag)
	p.X.Label.Text = "Songs per artist"
	p.Y.Label.Text = "Number of artists"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", fmt.Errorf("render: frequency distribution: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	out := r.artifact(tag, suffixArtistDist)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, out); err != nil {
		return "", fmt.Errorf("render: save %s: %w", out, err)
	}
	return out, nil
}

// DurationBox draws a boxplot of the durations; the plotter computes the
// quartiles and flags outliers itself.
func (r *Images) DurationBox(tag string, durations []float64) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s song duration distribution", tag)
	p.Y.Label.Text = "Duration (seconds)"

	box, err := plotter.NewBoxPlot(vg.Points(60), 0, plotter.Values(durations))
	if err != nil {
		return "", fmt.Errorf("render: duration boxplot: %w", err)
	}
	p.Add(box)
	p.NominalX(tag)

	out := r.artifact(tag, suffixBox)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, out); err != nil {
		return "", fmt.Errorf("render: save %s: %w", out, err)
	}
	return out, nil
}
