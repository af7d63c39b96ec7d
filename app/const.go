package app

import "time"

// Phase is one stage of the fixed intro/ready sequence.
// Phases only ever advance; no phase is revisited within a session.
type Phase int

const (
	PhaseSilence Phase = iota + 1
	PhaseBreath
	PhaseAwakening
	PhaseReady
)

// PhaseNames maps phases to display names.
var PhaseNames = map[Phase]string{
	PhaseSilence:   "silence",
	PhaseBreath:    "breath",
	PhaseAwakening: "awakening",
	PhaseReady:     "ready",
}

func (p Phase) String() string {
	if name, ok := PhaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Intro timeline offsets, measured from mount.
const (
	BreathDelay    = 2500 * time.Millisecond
	AwakeningDelay = 6000 * time.Millisecond
	ReadyDelay     = 9000 * time.Millisecond
	VisibleDelay   = 11500 * time.Millisecond
)

// PulseFade is the opacity sequence of the decorative breath pulse,
// stepped at PulseStep intervals starting when the breath phase begins.
var PulseFade = []float64{0, 0.3, 0.1, 0.25, 0}

const PulseStep = 800 * time.Millisecond

// Speed targets for the depth-advance rate. The current speed is never set
// directly after initialization; it eases toward the target each frame.
const (
	// SpeedDormant is the pre-awakening target (no visible drift).
	SpeedDormant = 0.0
	// SpeedAmbient is the idle target once the field awakens.
	SpeedAmbient = 0.002
	// SpeedThinking applies while the vision text is non-empty.
	SpeedThinking = 0.006
	// SpeedBurst applies immediately when the journey begins.
	SpeedBurst = 0.05
	// SpeedSustained is the elevated cruise target after the burst decays.
	SpeedSustained = 0.015

	// EaseFactor is the per-frame exponential approach rate toward the target.
	EaseFactor = 0.05

	// BurstHold is how long the burst target holds before decaying.
	BurstHold = 3500 * time.Millisecond
)

// Starfield constants
const (
	StarCount = 100

	// Depth bounds. A star's z stays in (ZMin, ZMax]; crossing ZMin
	// respawns it at full depth.
	ZMin = 0.001
	ZMax = 2.5

	// TrailDepth is the z below which a motion trail is drawn.
	TrailDepth = 0.5

	// OffscreenMargin is how far outside the surface a projection may land
	// before the star is skipped for the frame.
	OffscreenMargin = 50.0

	// FadeAlpha is the translucent clear applied each frame, producing the
	// fading-trail look instead of a hard clear.
	FadeAlpha = 0.25

	StarSizeScale    = 2.0
	StarOpacityScale = 1.5
	TrailAlphaFactor = 0.6
	TrailWidthFactor = 0.5
)
