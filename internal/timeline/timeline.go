package timeline

import (
	"container/heap"
	"time"
)

// ID identifies a scheduled timer. The zero ID is never issued, so it can
// mark "no timer" in caller state.
type ID int64

type timer struct {
	id       ID
	due      time.Duration
	period   time.Duration // 0 for one-shot
	seq      int64
	fn       func()
	canceled bool
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	// Equal deadlines fire in scheduling order.
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler is a single-threaded timer queue over a virtual clock.
type Scheduler struct {
	now    time.Duration
	lastID ID
	seq    int64
	queue  timerQueue
	active map[ID]*timer
}

func New() *Scheduler {
	return &Scheduler{active: make(map[ID]*timer)}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending reports how many timers are armed.
func (s *Scheduler) Pending() int { return len(s.active) }

// After schedules fn to run once d from now. A non-positive d fires on the
// next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) ID {
	return s.add(d, 0, fn)
}

// Every schedules fn to run each period, first firing one full period from
// now.
func (s *Scheduler) Every(period time.Duration, fn func()) ID {
	if period <= 0 {
		period = time.Nanosecond
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) ID {
	if d < 0 {
		d = 0
	}
	s.lastID++
	s.seq++
	t := &timer{
		id:     s.lastID,
		due:    s.now + d,
		period: period,
		seq:    s.seq,
		fn:     fn,
	}
	heap.Push(&s.queue, t)
	s.active[t.id] = t
	return t.id
}

// Cancel stops the timer with the given id. It reports whether the timer
// was still armed. Canceling from inside a callback is allowed, including
// a recurring timer canceling itself.
func (s *Scheduler) Cancel(id ID) bool {
	t, ok := s.active[id]
	if !ok {
		return false
	}
	t.canceled = true
	delete(s.active, id)
	return true
}

// Advance moves the clock forward by d, firing every timer that comes due
// in order. Callbacks run synchronously and may schedule or cancel timers;
// a timer scheduled inside a callback fires within the same Advance if its
// deadline falls inside the window.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*timer)
		if t.canceled {
			continue
		}
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
			s.seq++
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.active, t.id)
		}
		t.fn()
	}
	s.now = target
}
