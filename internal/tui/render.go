package tui

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/flipgrid/internal/board"
	"github.com/san-kum/flipgrid/internal/segment"
	"github.com/san-kum/flipgrid/internal/timeline"
)

// On-screen tile geometry in characters.
const (
	cellW = 8
	cellH = 4
	gapW  = 1
)

// termSurface implements board.Surface for the terminal. Shapes carry
// fill, stacking order and rotation; the compositor below turns that
// state into colored half-tiles each frame.
type termSurface struct {
	sched  *timeline.Scheduler
	shapes []*termShape
	zHigh  int
	zLow   int
}

type termShape struct {
	surf *termSurface
	site board.ShapeSite
	fill board.Fill
	z    int

	rot       float64
	animating bool
	from, to  float64
	start     time.Duration
}

func newTermSurface(sched *timeline.Scheduler) *termSurface {
	return &termSurface{sched: sched}
}

func (s *termSurface) NewShape(site board.ShapeSite) board.Shape {
	sh := &termShape{surf: s, site: site}
	s.shapes = append(s.shapes, sh)
	return sh
}

func (sh *termShape) SetFill(f board.Fill) { sh.fill = f }

func (sh *termShape) BringToFront() {
	sh.surf.zHigh++
	sh.z = sh.surf.zHigh
}

func (sh *termShape) SendToBack() {
	sh.surf.zLow--
	sh.z = sh.surf.zLow
}

func (sh *termShape) SetRotation(r float64) {
	sh.animating = false
	sh.rot = r
}

func (sh *termShape) TransitionRotation(r float64, done func()) {
	sh.from = sh.rotation()
	sh.to = r
	sh.start = sh.surf.sched.Now()
	sh.animating = true
	sh.surf.sched.After(board.FlipDuration, func() {
		sh.animating = false
		sh.rot = r
		if done != nil {
			done()
		}
	})
}

// rotation samples the shape's current transform, interpolating while a
// transition is in flight.
func (sh *termShape) rotation() float64 {
	if !sh.animating {
		return sh.rot
	}
	t := float64(sh.surf.sched.Now()-sh.start) / float64(board.FlipDuration)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return sh.from + (sh.to-sh.from)*t
}

// halfColor composites one half of a tile: the topmost shape that is not
// fully folded away wins; a shape mid-swing blends toward whatever sits
// behind it and darkens at the steepest point of the swing.
func (s *termSurface) halfColor(col, row int, o board.Orientation) (colorful.Color, bool) {
	var stack []*termShape
	for _, sh := range s.shapes {
		if sh.site.Col == col && sh.site.Row == row && sh.site.Orientation == o {
			stack = append(stack, sh)
		}
	}
	if len(stack) == 0 {
		return colorful.Color{}, false
	}
	sort.Slice(stack, func(i, j int) bool { return stack[i].z > stack[j].z })

	for i, sh := range stack {
		r := sh.rotation()
		if r >= 1 {
			continue
		}
		c := fillColor(sh.fill, o)
		if r > 0 {
			if i+1 < len(stack) {
				c = c.BlendLab(fillColor(stack[i+1].fill, o), r)
			}
			c = swingShade(c, r)
		}
		return c, true
	}
	return colorful.Color{}, false
}

func swingShade(c colorful.Color, r float64) colorful.Color {
	h, s, v := c.Hsv()
	v *= 1 - 0.35*math.Sin(math.Pi*r)
	return colorful.Hsv(h, s, v)
}

func fillColor(f board.Fill, o board.Orientation) colorful.Color {
	frag, ok := f.(*segment.Fragment)
	if !ok {
		// Unassigned or foreign fill: neutral slate.
		return colorful.Color{R: 0.16, G: 0.16, B: 0.18}
	}
	if o == board.Top {
		return frag.TopColor
	}
	return frag.BottomColor
}

// render draws the whole board as colored half-tile rows.
func (s *termSurface) render(cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for y := 0; y < cellH; y++ {
			o := board.Top
			if y >= cellH/2 {
				o = board.Bottom
			}
			b.WriteString("  ")
			for col := 0; col < cols; col++ {
				block := strings.Repeat(" ", cellW)
				if c, ok := s.halfColor(col, row, o); ok {
					style := lipgloss.NewStyle().Background(lipgloss.Color(c.Clamped().Hex()))
					b.WriteString(style.Render(block))
				} else {
					b.WriteString(block)
				}
				if col < cols-1 {
					b.WriteString(strings.Repeat(" ", gapW))
				}
			}
			b.WriteString("\n")
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
