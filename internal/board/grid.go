package board

import (
	"errors"
	"math/rand"
	"time"

	"github.com/san-kum/flipgrid/internal/timeline"
)

// ErrGridDimensions indicates a grid constructed with no columns or rows.
var ErrGridDimensions = errors.New("board: grid needs at least one column and one row")

// CascadeMode selects how a grid flip is ordered across cells.
type CascadeMode int

const (
	// CascadeSimultaneous flips every cell at once.
	CascadeSimultaneous CascadeMode = iota
	// CascadeStaggered schedules each cell after a growing delay plus
	// jitter, producing a wave across the board.
	CascadeStaggered
)

// GridOptions configure a Grid.
type GridOptions struct {
	Cols, Rows int
	Mode       CascadeMode
	// StaggerStep is the base delay added per cell index in staggered
	// mode; Jitter is the upper bound of the random extra per cell.
	StaggerStep time.Duration
	Jitter      time.Duration
	Seed        int64
}

// Grid is the flipboard: cells indexed (col, row), flipped together.
type Grid struct {
	cols, rows int
	cells      []*Cell // col + row*cols
	mode       CascadeMode
	stagger    time.Duration
	jitter     time.Duration
	sched      *timeline.Scheduler
	rng        *rand.Rand
}

func NewGrid(surf Surface, sched *timeline.Scheduler, opt GridOptions) (*Grid, error) {
	if opt.Cols < 1 || opt.Rows < 1 {
		return nil, ErrGridDimensions
	}
	g := &Grid{
		cols:    opt.Cols,
		rows:    opt.Rows,
		cells:   make([]*Cell, opt.Cols*opt.Rows),
		mode:    opt.Mode,
		stagger: opt.StaggerStep,
		jitter:  opt.Jitter,
		sched:   sched,
		rng:     rand.New(rand.NewSource(opt.Seed)),
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[col+row*g.cols] = NewCell(surf, col, row)
		}
	}
	return g, nil
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Cell returns the cell at (col, row).
func (g *Grid) Cell(col, row int) *Cell { return g.cells[col+row*g.cols] }

// SetCurrentFill assigns provider fragments to every cell's visible pair.
func (g *Grid) SetCurrentFill(p FragmentProvider) {
	g.each(func(c *Cell, col, row, _ int) {
		c.SetCurrentPageFill(p.Fragment(col, row))
	})
}

// SetNextFill assigns provider fragments to every cell's hidden pair.
func (g *Grid) SetNextFill(p FragmentProvider) {
	g.each(func(c *Cell, col, row, _ int) {
		c.SetNextPageFill(p.Fragment(col, row))
	})
}

// Flip triggers a flip on every cell. onAllComplete fires exactly once,
// after every cell that accepted the flip has settled; cells that were
// already transitioning drop the request and do not delay completion.
func (g *Grid) Flip(onAllComplete func()) {
	remaining := len(g.cells)
	fired := false
	finish := func() {
		if fired || remaining != 0 {
			return
		}
		fired = true
		if onAllComplete != nil {
			onAllComplete()
		}
	}
	start := func(c *Cell) {
		if c.Flip(func() {
			remaining--
			finish()
		}) {
			return
		}
		remaining--
		finish()
	}

	if g.mode == CascadeSimultaneous {
		g.each(func(c *Cell, _, _, _ int) { start(c) })
		return
	}

	g.each(func(c *Cell, _, _, i int) {
		delay := time.Duration(i) * g.stagger
		if g.jitter > 0 {
			delay += time.Duration(g.rng.Int63n(int64(g.jitter)))
		}
		g.sched.After(delay, func() { start(c) })
	})
}

func (g *Grid) each(fn func(c *Cell, col, row, i int)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			i := col + row*g.cols
			fn(g.cells[i], col, row, i)
		}
	}
}
