package render

import (
	"fmt"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Venn draws a two-set Venn diagram. Region labels carry the exclusive and
// shared counts; circle placement is fixed, which reads fine for the
// playlist sizes this tool handles.
func (r *Images) Venn(tag, labelA, labelB string, onlyA, onlyB, both int) (string, error) {
	const (
		width   = 800
		height  = 500
		radius  = 170
		centerY = 280
		ax      = 310
		bx      = 490
	)

	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGBA(0.85, 0.35, 0.30, 0.5)
	dc.DrawCircle(ax, centerY, radius)
	dc.Fill()

	dc.SetRGBA(0.30, 0.40, 0.85, 0.5)
	dc.DrawCircle(bx, centerY, radius)
	dc.Fill()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("Playlist Intersection", width/2, 40, 0.5, 0.5)
	dc.DrawStringAnchored(labelA, ax-radius/2, centerY-radius-20, 0.5, 0.5)
	dc.DrawStringAnchored(labelB, bx+radius/2, centerY-radius-20, 0.5, 0.5)

	dc.DrawStringAnchored(strconv.Itoa(onlyA), ax-radius/2, centerY, 0.5, 0.5)
	dc.DrawStringAnchored(strconv.Itoa(both), (ax+bx)/2, centerY, 0.5, 0.5)
	dc.DrawStringAnchored(strconv.Itoa(onlyB), bx+radius/2, centerY, 0.5, 0.5)

	out := r.artifact(tag, suffixVenn)
	if err := dc.SavePNG(out); err != nil {
		return "", fmt.Errorf("render: save %s: %w", out, err)
	}
	return out, nil
}
