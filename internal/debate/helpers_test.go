package debate

import (
	"sync"
	"time"
)

// seqRandom returns vals in order, cycling, and counts draws.
type seqRandom struct {
	mu    sync.Mutex
	vals  []float64
	draws int
}

func (r *seqRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.vals[r.draws%len(r.vals)]
	r.draws++
	return v
}

func (r *seqRandom) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draws
}

// fakeClock records requested delays. When fire is true every timer has
// already expired; otherwise timers never fire and created is signaled for
// each new timer.
type fakeClock struct {
	mu      sync.Mutex
	fire    bool
	delays  []time.Duration
	timers  []*fakeTimer
	created chan struct{}
}

func newFiringClock() *fakeClock {
	return &fakeClock{fire: true}
}

func newStalledClock() *fakeClock {
	return &fakeClock{created: make(chan struct{}, 16)}
}

func (c *fakeClock) NewTimer(d time.Duration) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{ch: make(chan time.Time, 1)}
	if c.fire {
		t.ch <- time.Time{}
	}
	c.delays = append(c.delays, d)
	c.timers = append(c.timers, t)
	if c.created != nil {
		c.created <- struct{}{}
	}
	return t
}

func (c *fakeClock) recorded() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.delays...)
}

func (c *fakeClock) lastTimer() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[len(c.timers)-1]
}

type fakeTimer struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

func (t *fakeTimer) C() <-chan time.Time { return t.ch }

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

func (t *fakeTimer) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
