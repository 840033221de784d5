package segment

import (
	"image"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

const maxPaletteSamples = 8000

// Palette extracts k representative colors from an image with k-means
// clustering, ordered brightest first. The TUI uses it to tint its chrome
// to the displayed image.
func Palette(img image.Image, k int) ([]colorful.Color, error) {
	if k <= 0 || img == nil {
		return nil, nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, nil
	}

	// Subsample so clustering stays cheap on large images.
	step := 1
	if pixels := b.Dx() * b.Dy(); pixels > maxPaletteSamples {
		step = int(math.Sqrt(float64(pixels)/float64(maxPaletteSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, maxPaletteSamples)
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(bl) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, nil
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, err
	}

	palette := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		center := c.Center
		if len(center) < 3 {
			continue
		}
		palette = append(palette, colorful.Color{
			R: center[0], G: center[1], B: center[2],
		}.Clamped())
	}
	sort.Slice(palette, func(i, j int) bool {
		return luminance(palette[i]) > luminance(palette[j])
	})
	return palette, nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
