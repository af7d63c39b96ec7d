package app

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/stillfield/stillfield/audio"
	"github.com/stillfield/stillfield/common"
)

// App holds the complete scene state: the phase sequencer, the starfield,
// the speed scalars and the ambient drone, plus the browser surfaces they
// render into. All mutation happens from timer and frame callbacks on the
// single event loop.
type App struct {
	// Core state
	Sequencer *Sequencer
	Speed     *SpeedController
	Field     *Field
	RNG       *common.SeededRNG

	// Audio
	Drone *audio.Drone

	// Rendering
	Canvas *js.Object
	Ctx    *js.Object

	// Animation
	AnimationFrameID int
	LastFrameTime    float64

	// Decorative breath pulse opacity, stepped by the sequencer
	PulseOpacity float64

	// UI reveal state
	UIVisible bool

	// Debug UI
	StatsOverlay *StatsOverlay

	resizeCB *js.Object
	mounted  bool
}

// NewApp creates the scene with all state at rest. No timers are armed and
// nothing renders until Mount.
func NewApp(timers TimerFactory) *App {
	rng := common.NewSeededRNG(1)
	return &App{
		Sequencer:    NewSequencer(timers),
		Speed:        NewSpeedController(timers),
		Field:        NewField(rng),
		RNG:          rng,
		Drone:        audio.NewDrone(),
		StatsOverlay: NewStatsOverlay(),
	}
}

// Phase returns the current intro phase.
func (a *App) Phase() Phase {
	return a.Sequencer.Phase()
}

// Mount attaches the app to its canvas, wires input handlers and arms the
// intro timeline. Called once.
func (a *App) Mount(canvas, ctx *js.Object) {
	if a.mounted {
		return
	}
	a.mounted = true
	a.Canvas = canvas
	a.Ctx = ctx

	if canvas != nil {
		a.Field.Resize(canvas.Get("width").Float(), canvas.Get("height").Float())
		a.SetupInputHandlers()
	}

	a.Sequencer.Arm(a.cues())
}

// Unmount tears the scene down: every pending timer is cleared, the frame
// loop stops, the resize listener is removed and the drone is released.
func (a *App) Unmount() {
	a.Sequencer.CancelAll()
	a.Speed.CancelPending()
	a.stopLoop()
	a.removeResizeHandler()
	a.Drone.Stop()
}

// cues builds the intro timeline: phase transitions at fixed offsets from
// mount, with the pulse fade interleaved after the breath entry.
func (a *App) cues() []Cue {
	cues := []Cue{
		{BreathDelay, a.enterBreath},
		{AwakeningDelay, a.enterAwakening},
		{ReadyDelay, a.enterReady},
		{VisibleDelay, a.markVisible},
	}
	for i, opacity := range PulseFade {
		op := opacity
		cues = append(cues, Cue{
			After:  BreathDelay + time.Duration(i)*PulseStep,
			Action: func() { a.setPulse(op) },
		})
	}
	return cues
}

func (a *App) enterBreath() {
	if !a.Sequencer.Advance(PhaseBreath) {
		return
	}
	Debug("Phase:", PhaseBreath.String())
}

func (a *App) enterAwakening() {
	if !a.Sequencer.Advance(PhaseAwakening) {
		return
	}
	Debug("Phase:", PhaseAwakening.String())

	// The field renders from awakening on: allocate stars once and raise
	// the idle baseline to the ambient drift.
	a.Field.Populate()
	a.Speed.SetIdle(SpeedAmbient)
	a.startLoop()
}

func (a *App) enterReady() {
	if !a.Sequencer.Advance(PhaseReady) {
		return
	}
	Debug("Phase:", PhaseReady.String())

	// Reveal the primary UI and start the ambient drone. Audio is
	// best-effort: a blocked or failed context leaves a silent scene.
	a.setBodyClass("ready")
	a.Drone.Start()
	a.Drone.Chime()
}

func (a *App) markVisible() {
	a.UIVisible = true
	a.setBodyClass("visible")
}

// SetVision feeds the vision text into the speed coupling.
func (a *App) SetVision(text string) {
	a.Speed.SetVision(text)
}

// Begin fires the journey trigger: an immediate speed burst that decays to
// the sustained cruise. Returns false when the vision text is empty.
func (a *App) Begin() bool {
	ok := a.Speed.Burst()
	if ok {
		Debug("Journey begun")
	}
	return ok
}

// setPulse updates the breath pulse opacity and pushes it to the DOM
// element when one is attached.
func (a *App) setPulse(opacity float64) {
	a.PulseOpacity = opacity
	a.applyPulse()
}
