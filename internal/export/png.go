// Package export renders a resting flipboard to a PNG image: one rounded
// tile per cell, clipped out of the segmented source image.
package export

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/san-kum/flipgrid/internal/segment"
)

const (
	margin     = 16
	captionPad = 26
	fontSize   = 13
)

// Snapshot writes the board defined by seg to path. Every fragment is
// drawn inside a rounded rectangle with the given corner radius; caption,
// if non-empty, is printed under the board.
func Snapshot(seg *segment.Segmenter, cornerRadius int, caption, path string) error {
	extent := seg.Extent()
	w := extent.X + 2*margin
	h := extent.Y + 2*margin
	if caption != "" {
		h += captionPad
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(0.04, 0.04, 0.05)
	dc.Clear()

	for row := 0; row < seg.Rows(); row++ {
		for col := 0; col < seg.Cols(); col++ {
			f := seg.Frag(col, row)
			x := float64(margin + f.Region.Min.X)
			y := float64(margin + f.Region.Min.Y)
			size := float64(f.Region.Dx())

			dc.DrawRoundedRectangle(x, y, size, size, float64(cornerRadius))
			dc.Clip()
			dc.DrawImage(seg.Scaled(), margin, margin)
			dc.ResetClip()
		}
	}

	if caption != "" {
		font, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return fmt.Errorf("export: parse caption font: %w", err)
		}
		face := truetype.NewFace(font, &truetype.Options{Size: fontSize})
		dc.SetFontFace(face)
		dc.SetRGB(0.65, 0.65, 0.7)
		dc.DrawString(caption, margin, float64(h-margin+4))
	}

	return dc.SavePNG(path)
}
