package render

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"sort"

	"github.com/fogleman/gg"
	"github.com/psykhi/wordclouds"
	"golang.org/x/image/font/basicfont"
)

const (
	cloudWidth  = 800
	cloudHeight = 400
)

var cloudPalette = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
}

// WordCloud draws a word cloud sized by the given frequencies. An empty
// counts map still produces a (blank) artifact so an all-misses lyrics run
// completes normally. When no TTF is available the cloud is drawn with the
// built-in face instead; the renderer never fails on a missing font.
func (r *Images) WordCloud(tag string, counts map[string]int) (string, error) {
	out := r.artifact(tag, suffixWordCloud)

	if len(counts) == 0 || !r.HasFont() {
		return out, r.basicWordCloud(out, counts)
	}

	cloud := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(r.FontFile),
		wordclouds.FontMaxSize(180),
		wordclouds.FontMinSize(12),
		wordclouds.Width(cloudWidth),
		wordclouds.Height(cloudHeight),
		wordclouds.Colors(cloudPalette),
		wordclouds.BackgroundColor(color.White),
	)
	img := cloud.Draw()

	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("render: create %s: %w", out, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("render: encode %s: %w", out, err)
	}
	return out, nil
}

// HasFont reports whether the configured word-cloud TTF exists.
func (r *Images) HasFont() bool {
	if r.FontFile == "" {
		return false
	}
	_, err := os.Stat(r.FontFile)
	return err == nil
}

// basicWordCloud lays the most frequent words out in rows with the built-in
// face, scaled by count. Cruder than the TTF cloud but always available.
func (r *Images) basicWordCloud(out string, counts map[string]int) error {
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > 40 {
		words = words[:40]
	}

	dc := gg.NewContext(cloudWidth, cloudHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	var maxCount float64 = 1
	if len(words) > 0 {
		maxCount = float64(counts[words[0]])
	}

	const margin = 20
	x, y := float64(margin), float64(margin)
	rowHeight := 0.0
	for i, w := range words {
		scale := 1.0 + 3.0*float64(counts[w])/maxCount
		width, height := dc.MeasureString(w)
		width, height = width*scale, height*scale

		if x+width > cloudWidth-margin && x > margin {
			x = margin
			y += rowHeight + margin/2
			rowHeight = 0
		}
		if y+height > cloudHeight-margin {
			break
		}
		if height > rowHeight {
			rowHeight = height
		}

		dc.Push()
		dc.SetColor(cloudPalette[i%len(cloudPalette)])
		dc.Translate(x, y+height)
		dc.Scale(scale, scale)
		dc.DrawString(w, 0, 0)
		dc.Pop()

		x += width + margin/2
	}

	if err := dc.SavePNG(out); err != nil {
		return fmt.Errorf("render: save %s: %w", out, err)
	}
	return nil
}
