package app

import "strings"

// SpeedController owns the two speed scalars. Target is written by phase
// transitions, vision edits and the begin trigger; writers are
// last-write-wins with no queuing. Current is only ever eased toward
// Target, so it converges without overshoot from either side.
type SpeedController struct {
	Current float64
	Target  float64

	timers      TimerFactory
	idle        float64
	hasVision   bool
	cancelBurst func()
}

// NewSpeedController creates a controller at rest.
func NewSpeedController(timers TimerFactory) *SpeedController {
	return &SpeedController{
		timers: timers,
		idle:   SpeedDormant,
	}
}

// Step eases the current speed toward the target. Called once per frame.
func (c *SpeedController) Step() {
	c.Current += (c.Target - c.Current) * EaseFactor
}

// SetIdle updates the idle baseline (raised to SpeedAmbient when the field
// awakens). Applied immediately unless the vision text is holding the
// thinking target.
func (c *SpeedController) SetIdle(v float64) {
	c.idle = v
	if !c.hasVision {
		c.Target = v
	}
}

// Idle returns the current idle baseline.
func (c *SpeedController) Idle() float64 {
	return c.idle
}

// SetVision couples the vision text to the target: non-empty (after
// trimming) raises it to the thinking value, empty reverts to the idle
// baseline. An edit always writes, so it also ends any sustained cruise.
func (c *SpeedController) SetVision(text string) {
	c.hasVision = strings.TrimSpace(text) != ""
	if c.hasVision {
		c.Target = SpeedThinking
	} else {
		c.Target = c.idle
	}
}

// HasVision reports whether the vision text is non-empty. Gates the begin
// trigger.
func (c *SpeedController) HasVision() bool {
	return c.hasVision
}

// Burst raises the target sharply, then decays it to the sustained cruise
// value after BurstHold. Rejected while the vision text is empty. A repeat
// trigger restarts the hold.
func (c *SpeedController) Burst() bool {
	if !c.hasVision {
		return false
	}
	if c.cancelBurst != nil {
		c.cancelBurst()
	}
	c.Target = SpeedBurst
	c.cancelBurst = c.timers(BurstHold, func() {
		c.cancelBurst = nil
		c.Target = SpeedSustained
	})
	return true
}

// CancelPending clears a scheduled burst decay on teardown.
func (c *SpeedController) CancelPending() {
	if c.cancelBurst != nil {
		c.cancelBurst()
		c.cancelBurst = nil
	}
}
