// Package timeline provides the cooperative scheduler that drives every
// animation and cycling timer in flipgrid.
//
// The scheduler owns a virtual clock. Nothing fires on its own: a driver
// calls [Scheduler.Advance] with elapsed wall time (the TUI does this from
// its frame tick) and due callbacks run synchronously, in due order, on the
// caller's goroutine. Tests advance the clock by hand, which makes timer
// behavior fully deterministic.
//
//   - [Scheduler.After]: one-shot timer
//   - [Scheduler.Every]: recurring timer, first firing one period out
//   - [Scheduler.Cancel]: stops a timer; an already-running callback is
//     never interrupted
//
// The scheduler is not safe for concurrent use: all callbacks run inside
// the event loop that advances the clock.
package timeline
