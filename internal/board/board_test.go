package board

import (
	"fmt"

	"github.com/san-kum/flipgrid/internal/timeline"
)

// fakeFill is a minimal Fill for tests.
type fakeFill string

func (f fakeFill) Ref() string { return string(f) }

// fakeProvider namespaces fills by an image name.
type fakeProvider string

func (p fakeProvider) Fragment(col, row int) Fill {
	return fakeFill(fmt.Sprintf("%s/%dx%d", string(p), col, row))
}

// fakeSurface animates through the timeline scheduler, completing each
// transition FlipDuration after it starts.
type fakeSurface struct {
	sched  *timeline.Scheduler
	shapes []*fakeShape
	zHigh  int
	zLow   int
}

type fakeShape struct {
	surf        *fakeSurface
	site        ShapeSite
	fill        Fill
	rotation    float64
	z           int
	transitions int
}

func newFakeSurface(sched *timeline.Scheduler) *fakeSurface {
	return &fakeSurface{sched: sched}
}

func (s *fakeSurface) NewShape(site ShapeSite) Shape {
	sh := &fakeShape{surf: s, site: site}
	s.shapes = append(s.shapes, sh)
	return sh
}

func (s *fakeShape) SetFill(f Fill) { s.fill = f }

func (s *fakeShape) BringToFront() {
	s.surf.zHigh++
	s.z = s.surf.zHigh
}

func (s *fakeShape) SendToBack() {
	s.surf.zLow--
	s.z = s.surf.zLow
}

func (s *fakeShape) SetRotation(r float64) { s.rotation = r }

func (s *fakeShape) TransitionRotation(r float64, done func()) {
	s.transitions++
	s.surf.sched.After(FlipDuration, func() {
		s.rotation = r
		if done != nil {
			done()
		}
	})
}
