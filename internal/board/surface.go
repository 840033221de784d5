package board

import "time"

// FlipDuration is the time one flap transition takes. Both flaps animated
// during a cell flip move in lockstep over this duration.
const FlipDuration = 600 * time.Millisecond

// Fill is an opaque reference to cell content. Fills originate from a
// fragment provider and are only ever compared and handed to shapes, never
// inspected by the board.
type Fill interface {
	Ref() string
}

// FragmentProvider hands out the fill for each grid position.
type FragmentProvider interface {
	Fragment(col, row int) Fill
}

// ShapeSite places one flap shape on the surface.
type ShapeSite struct {
	Col, Row    int
	Orientation Orientation
}

// Shape is a visual panel created by a Surface. Rotation runs from 0 (flush
// with its half of the tile) to 1 (folded against the opposite half and
// hidden behind the front pair).
type Shape interface {
	SetFill(Fill)
	BringToFront()
	SendToBack()

	// SetRotation applies the transform immediately, without animating.
	SetRotation(r float64)

	// TransitionRotation animates toward r over FlipDuration and invokes
	// done exactly once when the transition finishes. done may be nil.
	TransitionRotation(r float64, done func())
}

// Surface is the renderable-surface provider the board draws on.
type Surface interface {
	NewShape(site ShapeSite) Shape
}
