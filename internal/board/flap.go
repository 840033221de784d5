package board

import "log"

// Orientation says which half of the tile face a flap covers.
type Orientation int

const (
	Top Orientation = iota
	Bottom
)

func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "invalid"
}

const (
	restAngle    = 0.0
	rotatedAngle = 1.0
)

// Flap is one rotatable panel. It is owned exclusively by its cell; the
// cell drives every state change.
type Flap struct {
	orientation Orientation
	fill        Fill
	rotated     bool
	animated    bool
	shape       Shape
}

// NewFlap creates a flap and its backing shape. An invalid orientation is
// logged and yields a flap without geometry: state changes still track but
// nothing is drawn.
func NewFlap(surf Surface, site ShapeSite) *Flap {
	f := &Flap{orientation: site.Orientation}
	if site.Orientation != Top && site.Orientation != Bottom {
		log.Printf("board: invalid flap orientation %d at (%d,%d), flap has no geometry",
			site.Orientation, site.Col, site.Row)
		return f
	}
	f.shape = surf.NewShape(site)
	return f
}

func (f *Flap) Orientation() Orientation { return f.orientation }
func (f *Flap) Rotated() bool            { return f.rotated }
func (f *Flap) Fill() Fill               { return f.fill }

// Rotate moves the flap to its folded position. With transitions enabled
// the move animates and done fires once on completion; otherwise the state
// applies instantly and done is never called.
func (f *Flap) Rotate(done func()) { f.setRotated(true, done) }

// Unrotate moves the flap back to its rest position. Completion semantics
// match Rotate.
func (f *Flap) Unrotate(done func()) { f.setRotated(false, done) }

func (f *Flap) setRotated(rotated bool, done func()) {
	f.rotated = rotated
	if f.shape == nil {
		return
	}
	angle := restAngle
	if rotated {
		angle = rotatedAngle
	}
	if !f.animated {
		f.shape.SetRotation(angle)
		return
	}
	f.shape.TransitionRotation(angle, done)
}

func (f *Flap) SetFill(fill Fill) {
	f.fill = fill
	if f.shape != nil {
		f.shape.SetFill(fill)
	}
}

func (f *Flap) BringToFront() {
	if f.shape != nil {
		f.shape.BringToFront()
	}
}

func (f *Flap) SendToBack() {
	if f.shape != nil {
		f.shape.SendToBack()
	}
}

func (f *Flap) EnableTransition()  { f.animated = true }
func (f *Flap) DisableTransition() { f.animated = false }
