package game

import "time"

// ClockState is the scheduling state of a game
type ClockState int

const (
	Paused ClockState = iota
	Running
)

func (s ClockState) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// Clock is a fixed-rate scheduler polled from the frame loop. A tick fires
// at most once per Poll and only while Running; missed ticks are dropped,
// never replayed. Poll, Pause and Resume must share one goroutine; once
// Pause returns no further tick fires.
type Clock struct {
	interval time.Duration
	state    ClockState
	last     time.Time
	onTick   func()
}

// NewClock builds a paused clock firing onTick ticksPerSec times a second
func NewClock(ticksPerSec int, onTick func()) *Clock {
	if ticksPerSec <= 0 {
		ticksPerSec = 1
	}
	return &Clock{
		interval: time.Second / time.Duration(ticksPerSec),
		state:    Paused,
		onTick:   onTick,
	}
}

// Interval is the period between ticks
func (c *Clock) Interval() time.Duration {
	return c.interval
}

func (c *Clock) State() ClockState {
	return c.state
}

func (c *Clock) Running() bool {
	return c.state == Running
}

// Pause stops tick delivery. No-op when already paused.
func (c *Clock) Pause() {
	c.state = Paused
}

// Resume restarts ticking from now; the first tick follows one interval later.
// No-op when already running.
func (c *Clock) Resume(now time.Time) {
	if c.state == Running {
		return
	}
	c.state = Running
	c.last = now
}

// Toggle flips between Running and Paused
func (c *Clock) Toggle(now time.Time) {
	if c.state == Running {
		c.Pause()
	} else {
		c.Resume(now)
	}
}

// Poll fires one tick if Running and an interval has elapsed since the last
// one. It reports whether a tick fired.
func (c *Clock) Poll(now time.Time) bool {
	if c.state != Running || now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	if c.onTick != nil {
		c.onTick()
	}
	return true
}
