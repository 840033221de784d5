// Package board implements the flip-tile state machines: the Flap, the
// Cell it belongs to, and the Grid that coordinates a whole board.
//
// A Cell owns four flaps split into two pairs. At rest one pair faces the
// viewer (both flaps front, unrotated) while the other hides behind it with
// its bottom flap folded up. A flip animates the front top flap down and
// the hidden bottom flap into view, then recycles the outgoing pair as the
// new hidden pair by toggling an index between the two. Flaps are recycled,
// never recreated.
//
//   - [Flap]: one rotatable panel, half of a tile face
//   - [Cell]: one flip tile; guards against overlapping flip requests
//   - [Grid]: (col,row) arrangement of cells with simultaneous or
//     staggered cascades
//
// Rendering is delegated to a [Surface]: the board only mutates shape
// state (fill, stacking, rotation) and listens for transition completions.
// Everything runs on the single goroutine that drives the timeline
// scheduler.
package board
