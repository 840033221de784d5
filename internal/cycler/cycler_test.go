package cycler

import (
	"fmt"
	"testing"
	"time"

	"github.com/san-kum/flipgrid/internal/board"
	"github.com/san-kum/flipgrid/internal/timeline"
)

type fill string

func (f fill) Ref() string { return string(f) }

type provider string

func (p provider) Fragment(col, row int) board.Fill {
	return fill(fmt.Sprintf("%s/%dx%d", string(p), col, row))
}

// fakeBoard completes every flip synchronously and records staging.
type fakeBoard struct {
	flips   int
	current []board.FragmentProvider
	next    []board.FragmentProvider
}

func (b *fakeBoard) Flip(done func()) {
	b.flips++
	if done != nil {
		done()
	}
}

func (b *fakeBoard) SetCurrentFill(p board.FragmentProvider) { b.current = append(b.current, p) }
func (b *fakeBoard) SetNextFill(p board.FragmentProvider)    { b.next = append(b.next, p) }

func sources(names ...string) []board.FragmentProvider {
	out := make([]board.FragmentProvider, len(names))
	for i, n := range names {
		out[i] = provider(n)
	}
	return out
}

func TestNewValidation(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}

	if _, err := New(sched, b, sources("a"), time.Second); err != ErrTooFewImages {
		t.Errorf("one source: error = %v, want ErrTooFewImages", err)
	}
	if _, err := New(sched, b, nil, time.Second); err != ErrTooFewImages {
		t.Errorf("no sources: error = %v, want ErrTooFewImages", err)
	}
	if _, err := New(sched, b, sources("a", "b"), 0); err != ErrBadPeriod {
		t.Errorf("zero period: error = %v, want ErrBadPeriod", err)
	}
}

func TestStage(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}
	c, err := New(sched, b, sources("a", "b", "c"), time.Second)
	if err != nil {
		t.Fatal(err)
	}

	c.Stage()
	if len(b.current) != 1 || b.current[0] != provider("a") {
		t.Errorf("staged current = %v, want [a]", b.current)
	}
	if len(b.next) != 1 || b.next[0] != provider("b") {
		t.Errorf("staged next = %v, want [b]", b.next)
	}
}

func TestCycleAdvancesAndPreStages(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}
	c, _ := New(sched, b, sources("a", "b", "c"), time.Second)
	c.Stage()

	wantIndex := []int{1, 2, 0, 1}
	wantStaged := []board.FragmentProvider{provider("c"), provider("a"), provider("b"), provider("c")}
	for i := range wantIndex {
		c.Cycle()
		if c.Current() != wantIndex[i] {
			t.Errorf("cycle %d: index = %d, want %d", i+1, c.Current(), wantIndex[i])
		}
		staged := b.next[len(b.next)-1]
		if staged != wantStaged[i] {
			t.Errorf("cycle %d: staged next = %v, want %v", i+1, staged, wantStaged[i])
		}
	}
}

func TestEnableCyclingIdempotent(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}
	c, _ := New(sched, b, sources("a", "b"), 4*time.Second)

	c.EnableCycling()
	c.EnableCycling()
	if sched.Pending() != 1 {
		t.Fatalf("armed timers = %d after double enable, want 1", sched.Pending())
	}

	sched.Advance(4 * time.Second)
	if b.flips != 1 {
		t.Errorf("flips = %d after one period, want 1", b.flips)
	}
}

func TestDisableCyclingStopsTimer(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}
	c, _ := New(sched, b, sources("a", "b"), time.Second)

	c.EnableCycling()
	c.DisableCycling()
	sched.Advance(10 * time.Second)
	if b.flips != 0 {
		t.Errorf("flips = %d after disable, want 0", b.flips)
	}
	if c.Enabled() {
		t.Error("cycler still enabled")
	}
}

func TestManualCycleResetsPhase(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}
	c, _ := New(sched, b, sources("a", "b", "c"), 4*time.Second)

	// Auto-cycling starts at t=0 with a 4s period.
	c.EnableCycling()

	sched.Advance(time.Second) // t=1
	c.ManualCycle()
	if b.flips != 1 {
		t.Fatalf("flips = %d after manual cycle, want 1", b.flips)
	}

	// The old schedule would have fired at t=4; the reset pushes the
	// next automatic cycle to t=5.
	sched.Advance(3 * time.Second) // t=4
	if b.flips != 1 {
		t.Fatalf("flips = %d at t=4, want 1 (phase not reset)", b.flips)
	}
	sched.Advance(time.Second) // t=5
	if b.flips != 2 {
		t.Fatalf("flips = %d at t=5, want 2", b.flips)
	}
}

func TestManualCycleWhileDisabledDoesNotArmTimer(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}
	c, _ := New(sched, b, sources("a", "b"), time.Second)

	c.ManualCycle()
	if b.flips != 1 {
		t.Fatalf("flips = %d, want 1", b.flips)
	}
	if sched.Pending() != 0 {
		t.Errorf("armed timers = %d, want 0", sched.Pending())
	}
}

func TestAutoCycleSequence(t *testing.T) {
	sched := timeline.New()
	b := &fakeBoard{}
	c, _ := New(sched, b, sources("a", "b", "c"), 2*time.Second)
	c.Stage()
	c.EnableCycling()

	sched.Advance(6 * time.Second)
	if b.flips != 3 {
		t.Fatalf("flips = %d after 3 periods, want 3", b.flips)
	}
	if c.Current() != 0 {
		t.Errorf("index = %d after 3 cycles of 3 images, want 0", c.Current())
	}
}

// Full-stack scenario from a 2x1 grid with two images: after one cycle the
// board shows B and restages A.
func TestTwoImageWrapScenario(t *testing.T) {
	sched := timeline.New()
	surf := &gridSurface{sched: sched}
	g, err := board.NewGrid(surf, sched, board.GridOptions{Cols: 2, Rows: 1})
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(sched, g, sources("A", "B"), 4*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	c.Stage()

	for col := 0; col < 2; col++ {
		if got := g.Cell(col, 0).CurrentFill().Ref(); got != fmt.Sprintf("A/%dx0", col) {
			t.Fatalf("cell %d initial fill = %s, want A fragment", col, got)
		}
	}

	c.Cycle()
	sched.Advance(board.FlipDuration)

	for col := 0; col < 2; col++ {
		if got := g.Cell(col, 0).CurrentFill().Ref(); got != fmt.Sprintf("B/%dx0", col) {
			t.Errorf("cell %d fill = %s after cycle, want B fragment", col, got)
		}
		if got := g.Cell(col, 0).NextFill().Ref(); got != fmt.Sprintf("A/%dx0", col) {
			t.Errorf("cell %d next fill = %s after cycle, want A fragment (wrapped)", col, got)
		}
	}
	if c.Current() != 1 {
		t.Errorf("index = %d after one cycle of two images, want 1", c.Current())
	}
}

// gridSurface is a shape factory for the real grid, animating through the
// scheduler like the terminal surface does.
type gridSurface struct {
	sched *timeline.Scheduler
}

type gridShape struct {
	surf *gridSurface
}

func (s *gridSurface) NewShape(site board.ShapeSite) board.Shape {
	return &gridShape{surf: s}
}

func (s *gridShape) SetFill(board.Fill)  {}
func (s *gridShape) BringToFront()       {}
func (s *gridShape) SendToBack()         {}
func (s *gridShape) SetRotation(float64) {}
func (s *gridShape) TransitionRotation(r float64, done func()) {
	s.surf.sched.After(board.FlipDuration, func() {
		if done != nil {
			done()
		}
	})
}
