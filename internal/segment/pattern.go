package segment

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Pattern renders a synthetic demo image so the board can run with no
// assets. Successive n values give visually distinct images.
func Pattern(n, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	base := math.Mod(float64(n)*137.5, 360)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c colorful.Color
			switch n % 3 {
			case 0: // diagonal hue sweep
				t := float64(x+y) / float64(w+h)
				c = colorful.Hsv(math.Mod(base+t*120, 360), 0.7, 0.95-0.35*float64(y)/float64(h))
			case 1: // rings from the center
				dx := float64(x)/float64(w) - 0.5
				dy := float64(y)/float64(h) - 0.5
				d := math.Sqrt(dx*dx + dy*dy)
				c = colorful.Hsv(base, 0.55+0.4*math.Abs(math.Sin(d*14)), 0.9-0.4*d)
			default: // checker
				cell := (x/(w/8+1) + y/(h/6+1)) % 2
				v := 0.85
				if cell == 1 {
					v = 0.45
				}
				c = colorful.Hsv(math.Mod(base+float64(cell)*40, 360), 0.6, v)
			}
			r, g, b := c.Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
