package board

type pair struct {
	top    *Flap
	bottom *Flap
}

// Cell is one flip tile: four flaps in two pairs plus a current-pair
// index. The pair at `current` faces the viewer; the other pair waits
// behind it with its bottom flap folded up against the top half.
type Cell struct {
	pairs    [2]pair
	current  int
	flipping bool
}

// NewCell builds a resting cell at the given grid position. Pair 0 starts
// in front.
func NewCell(surf Surface, col, row int) *Cell {
	c := &Cell{}
	for i := range c.pairs {
		c.pairs[i] = pair{
			top:    NewFlap(surf, ShapeSite{Col: col, Row: row, Orientation: Top}),
			bottom: NewFlap(surf, ShapeSite{Col: col, Row: row, Orientation: Bottom}),
		}
	}

	// Transitions start disabled, so these moves apply instantly.
	hidden := c.pairs[1]
	hidden.bottom.Rotate(nil)
	hidden.top.SendToBack()
	hidden.bottom.SendToBack()

	front := c.pairs[0]
	front.top.BringToFront()
	front.bottom.BringToFront()
	return c
}

// Flipping reports whether a transition is in flight.
func (c *Cell) Flipping() bool { return c.flipping }

// CurrentFill returns the fill of the visible pair.
func (c *Cell) CurrentFill() Fill { return c.pairs[c.current].top.Fill() }

// NextFill returns the fill staged on the hidden pair.
func (c *Cell) NextFill() Fill { return c.pairs[1-c.current].top.Fill() }

// SetCurrentPageFill assigns fill to both flaps of the visible pair. Legal
// in any state.
func (c *Cell) SetCurrentPageFill(fill Fill) {
	c.pairs[c.current].top.SetFill(fill)
	c.pairs[c.current].bottom.SetFill(fill)
}

// SetNextPageFill assigns fill to both flaps of the hidden pair. Assigning
// while a flip still references the old pair is fine: the content only goes
// stale after the pair swap.
func (c *Cell) SetNextPageFill(fill Fill) {
	c.pairs[1-c.current].top.SetFill(fill)
	c.pairs[1-c.current].bottom.SetFill(fill)
}

// Flip starts one transition and reports whether it started. A cell that is
// already transitioning drops the request entirely. onFinished, if given,
// runs once the cell is back at rest.
func (c *Cell) Flip(onFinished func()) bool {
	if c.flipping {
		return false
	}
	c.flipping = true

	cur := c.pairs[c.current]
	next := c.pairs[1-c.current]

	cur.top.EnableTransition()
	next.bottom.EnableTransition()

	// The incoming bottom flap swings down in front of the outgoing
	// bottom, so its back face is what the viewer sees mid-swing.
	next.bottom.BringToFront()
	cur.bottom.SendToBack()

	next.bottom.Unrotate(nil)
	// Both flaps animate over the same duration; the top flap's
	// completion stands in for the whole cell.
	cur.top.Rotate(func() { c.settle(onFinished) })
	return true
}

// settle recycles the outgoing pair into the hidden rest position, swaps
// pair identities and restores resting depth order.
func (c *Cell) settle(onFinished func()) {
	cur := c.pairs[c.current]
	cur.top.DisableTransition()
	cur.bottom.DisableTransition()

	// Instant moves: bottom folds up, top returns flush, both hidden.
	cur.bottom.Rotate(nil)
	cur.top.Unrotate(nil)

	c.current = 1 - c.current

	front := c.pairs[c.current]
	front.top.BringToFront()
	front.bottom.BringToFront()

	back := c.pairs[1-c.current]
	back.top.SendToBack()
	back.bottom.SendToBack()

	c.flipping = false
	if onFinished != nil {
		onFinished()
	}
}
