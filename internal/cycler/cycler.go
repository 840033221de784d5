// Package cycler advances the flipboard through an ordered list of image
// sources, on a period or on demand.
package cycler

import (
	"errors"
	"time"

	"github.com/san-kum/flipgrid/internal/board"
	"github.com/san-kum/flipgrid/internal/timeline"
)

var (
	// ErrTooFewImages indicates fewer than two image sources; a board
	// needs both a current and a next page to flip between.
	ErrTooFewImages = errors.New("cycler: need at least two image sources")

	// ErrBadPeriod indicates a non-positive cycle period.
	ErrBadPeriod = errors.New("cycler: cycle period must be positive")
)

// Board is the slice of the flipboard the cycler drives.
type Board interface {
	Flip(onAllComplete func())
	SetCurrentFill(board.FragmentProvider)
	SetNextFill(board.FragmentProvider)
}

// Cycler owns the displayed-image index and the recurring cycle timer. It
// never recreates cells or segmenters; it only flips the board and
// restages the hidden pair.
type Cycler struct {
	sched   *timeline.Scheduler
	board   Board
	sources []board.FragmentProvider
	index   int
	period  time.Duration
	enabled bool
	timer   timeline.ID
}

func New(sched *timeline.Scheduler, b Board, sources []board.FragmentProvider, period time.Duration) (*Cycler, error) {
	if len(sources) < 2 {
		return nil, ErrTooFewImages
	}
	if period <= 0 {
		return nil, ErrBadPeriod
	}
	return &Cycler{
		sched:   sched,
		board:   b,
		sources: sources,
		period:  period,
	}, nil
}

// Current returns the index of the displayed image source.
func (c *Cycler) Current() int { return c.index }

// Enabled reports whether automatic cycling is on.
func (c *Cycler) Enabled() bool { return c.enabled }

// Stage assigns the initial current and next content to the board.
func (c *Cycler) Stage() {
	c.board.SetCurrentFill(c.sources[c.index])
	c.board.SetNextFill(c.sources[(c.index+1)%len(c.sources)])
}

// EnableCycling (re)starts the periodic timer. Calling it twice leaves
// exactly one timer armed.
func (c *Cycler) EnableCycling() {
	if c.timer != 0 {
		c.sched.Cancel(c.timer)
	}
	c.enabled = true
	c.timer = c.sched.Every(c.period, c.Cycle)
}

// DisableCycling stops the timer. An in-flight flip always runs to
// completion; the board keeps its last-displayed content.
func (c *Cycler) DisableCycling() {
	if c.timer != 0 {
		c.sched.Cancel(c.timer)
		c.timer = 0
	}
	c.enabled = false
}

// ManualCycle cycles immediately. If automatic cycling is on, the period
// restarts so the next automatic cycle is a full period away.
func (c *Cycler) ManualCycle() {
	c.Cycle()
	if c.enabled {
		c.sched.Cancel(c.timer)
		c.timer = c.sched.Every(c.period, c.Cycle)
	}
}

// Cycle flips the board. On completion the index advances circularly and
// the source one past the new index is pre-staged as the board's next
// content; the just-displayed image already became current through the
// cells' internal pair swap.
func (c *Cycler) Cycle() {
	c.board.Flip(func() {
		c.index = (c.index + 1) % len(c.sources)
		c.board.SetNextFill(c.sources[(c.index+1)%len(c.sources)])
	})
}
