// Package segment partitions source images into per-cell fragments for the
// flipboard, and derives the colors the terminal renderer and exporter
// work with.
package segment

import (
	"errors"
	"fmt"
	"image"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/flipgrid/internal/board"
)

// ErrBadGeometry indicates non-positive cell size or grid dimensions.
var ErrBadGeometry = errors.New("segment: cell size, columns and rows must be positive")

// Fragment is the portion of one source image assigned to a single grid
// cell. It implements board.Fill.
type Fragment struct {
	ref    string
	Region image.Rectangle
	Image  image.Image

	// Representative colors of the fragment's top and bottom halves,
	// used as flap fills by the terminal renderer.
	TopColor    colorful.Color
	BottomColor colorful.Color
}

// Ref returns the fragment's stable identifier, namespaced by its
// segmenter so fragments of different images never collide.
func (f *Fragment) Ref() string { return f.ref }

// Segmenter slices one image into cols×rows fragments. It is pure after
// construction and safe to share read-only.
type Segmenter struct {
	id         string
	cols, rows int
	size, gap  int
	scaled     *image.RGBA
	frags      []*Fragment // col + row*cols
}

// New scales src to the exact grid extent and computes every fragment.
// Fragment (c,r) covers [c(S+G), c(S+G)+S) × [r(S+G), r(S+G)+S).
func New(id string, src image.Image, cols, rows, size, gap int) (*Segmenter, error) {
	if cols < 1 || rows < 1 || size < 1 || gap < 0 {
		return nil, ErrBadGeometry
	}
	w := cols*size + (cols-1)*gap
	h := rows*size + (rows-1)*gap

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	s := &Segmenter{
		id:     id,
		cols:   cols,
		rows:   rows,
		size:   size,
		gap:    gap,
		scaled: scaled,
		frags:  make([]*Fragment, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0 := col * (size + gap)
			y0 := row * (size + gap)
			region := image.Rect(x0, y0, x0+size, y0+size)
			top := scaled.SubImage(image.Rect(x0, y0, x0+size, y0+size/2))
			bottom := scaled.SubImage(image.Rect(x0, y0+size/2, x0+size, y0+size))
			s.frags[col+row*cols] = &Fragment{
				ref:         fmt.Sprintf("%s/%dx%d", id, col, row),
				Region:      region,
				Image:       scaled.SubImage(region),
				TopColor:    representative(top),
				BottomColor: representative(bottom),
			}
		}
	}
	return s, nil
}

func (s *Segmenter) ID() string    { return s.id }
func (s *Segmenter) Cols() int     { return s.cols }
func (s *Segmenter) Rows() int     { return s.rows }
func (s *Segmenter) CellSize() int { return s.size }
func (s *Segmenter) Gap() int      { return s.gap }

// Extent is the full grid extent the scaled image covers.
func (s *Segmenter) Extent() image.Point {
	return s.scaled.Bounds().Max
}

// Scaled returns the source image scaled to the grid extent.
func (s *Segmenter) Scaled() image.Image { return s.scaled }

// Frag gives typed access to the fragment at (col, row).
func (s *Segmenter) Frag(col, row int) *Fragment {
	return s.frags[col+row*s.cols]
}

// Fragment satisfies board.FragmentProvider.
func (s *Segmenter) Fragment(col, row int) board.Fill {
	return s.Frag(col, row)
}

func representative(img image.Image) colorful.Color {
	c := dominantcolor.Find(img)
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
