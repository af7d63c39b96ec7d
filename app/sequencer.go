package app

import "time"

// TimerFactory schedules fn to run once after delay and returns a cancel
// function. The browser build backs it with setTimeout/clearTimeout, the
// native build with time.AfterFunc, and tests with a manual fake, so the
// sequencing logic itself stays platform-free and deterministic.
type TimerFactory func(delay time.Duration, fn func()) (cancel func())

// Cue is one scheduled action of the intro timeline, offset from arming.
type Cue struct {
	After  time.Duration
	Action func()
}

// Sequencer drives the application through the ordered intro phases.
// The whole timeline is armed as one flat cue list so teardown is a single
// cancel-all, rather than nested timer callbacks.
type Sequencer struct {
	timers  TimerFactory
	cancels []func()
	armed   bool
	phase   Phase
}

// NewSequencer creates a sequencer starting in the silence phase.
func NewSequencer(timers TimerFactory) *Sequencer {
	return &Sequencer{
		timers: timers,
		phase:  PhaseSilence,
	}
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Advance moves to phase p. Phases are strictly forward; a request to
// revisit an earlier or current phase is ignored and reported false.
func (s *Sequencer) Advance(p Phase) bool {
	if p <= s.phase {
		return false
	}
	s.phase = p
	return true
}

// Arm schedules every cue. Armed exactly once per session; later calls are
// no-ops so a double mount cannot replay the intro.
func (s *Sequencer) Arm(cues []Cue) {
	if s.armed {
		return
	}
	s.armed = true
	for _, cue := range cues {
		s.cancels = append(s.cancels, s.timers(cue.After, cue.Action))
	}
}

// CancelAll clears every outstanding timer so nothing fires into a
// torn-down view. The sequencer stays armed; the session is over.
func (s *Sequencer) CancelAll() {
	for _, cancel := range s.cancels {
		if cancel != nil {
			cancel()
		}
	}
	s.cancels = nil
}
