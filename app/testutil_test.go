package app

import "time"

// fakeClock is a deterministic TimerFactory for tests: timers fire in due
// order when the clock is advanced, never from real time.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	due      time.Duration
	fn       func()
	fired    bool
	canceled bool
}

func (c *fakeClock) factory(delay time.Duration, fn func()) (cancel func()) {
	t := &fakeTimer{due: c.now + delay, fn: fn}
	c.timers = append(c.timers, t)
	return func() { t.canceled = true }
}

// advance moves the clock forward and fires every due timer in due order.
// Timers armed by fired callbacks run too if they come due.
func (c *fakeClock) advance(d time.Duration) {
	c.now += d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.fired || t.canceled || t.due > c.now {
				continue
			}
			if next == nil || t.due < next.due {
				next = t
			}
		}
		if next == nil {
			return
		}
		next.fired = true
		next.fn()
	}
}

// pending counts timers that are armed but have not fired or been canceled.
func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.canceled {
			n++
		}
	}
	return n
}
