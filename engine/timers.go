package engine

import (
	"sort"
	"sync"
	"time"
)

// Timer is a cancellable one-shot callback
type Timer interface {
	Stop() bool
}

// Timers schedules one-shot deferred callbacks
type Timers interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealTimers runs callbacks on runtime timers
// Wrap, when set, decorates each callback (crash recovery)
type RealTimers struct {
	Wrap func(func()) func()
}

// AfterFunc schedules fn after d on its own goroutine
func (rt RealTimers) AfterFunc(d time.Duration, fn func()) Timer {
	if rt.Wrap != nil {
		fn = rt.Wrap(fn)
	}
	return time.AfterFunc(d, fn)
}

// ManualTimers fires callbacks only when Advance passes their deadline
// Callbacks run synchronously on the goroutine calling Advance
type ManualTimers struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	owner    *ManualTimers
	deadline time.Duration
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

// NewManualTimers creates an empty manual timer set at time zero
func NewManualTimers() *ManualTimers {
	return &ManualTimers{}
}

// AfterFunc registers fn to fire once d has elapsed on the manual clock
func (mt *ManualTimers) AfterFunc(d time.Duration, fn func()) Timer {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	mt.seq++
	t := &manualTimer{owner: mt, deadline: mt.now + d, seq: mt.seq, fn: fn}
	mt.pending = append(mt.pending, t)
	return t
}

// Advance moves the manual clock and fires due callbacks in deadline order
func (mt *ManualTimers) Advance(d time.Duration) int {
	mt.mu.Lock()
	mt.now += d
	now := mt.now

	var due, rest []*manualTimer
	for _, t := range mt.pending {
		if t.stopped {
			continue
		}
		if t.deadline <= now {
			t.fired = true
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	mt.pending = rest
	mt.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of scheduled, unfired, unstopped callbacks
func (mt *ManualTimers) Pending() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	n := 0
	for _, t := range mt.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Stop cancels the timer; false if it already fired or was stopped
func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
