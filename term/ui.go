package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/stillfield/stillfield/app"
	"github.com/stillfield/stillfield/common"
)

const defaultFPS = 30

// UI runs the scene in a terminal: the same sequencer, speed coupling and
// starfield core as the browser build, rendered as runes. All state is
// owned by the Run loop; timer callbacks are funneled into it.
type UI struct {
	screen   tcell.Screen
	width    int
	height   int
	interval time.Duration

	seq   *app.Sequencer
	speed *app.SpeedController
	field *app.Field
	drone *Drone

	vision  []rune
	pulse   float64
	visible bool

	actions chan func()
	done    chan struct{}
}

// NewUI initializes the terminal screen and the simulation core. A
// non-positive fps falls back to the default frame rate.
func NewUI(seed uint32, sound bool, fps int) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	if fps <= 0 {
		fps = defaultFPS
	}
	u := &UI{
		screen:   screen,
		interval: time.Second / time.Duration(fps),
		drone:    NewDrone(sound),
		actions:  make(chan func(), 16),
		done:     make(chan struct{}),
	}
	u.seq = app.NewSequencer(u.timers)
	u.speed = app.NewSpeedController(u.timers)
	u.field = app.NewField(common.NewSeededRNG(seed))

	u.width, u.height = screen.Size()
	u.field.Resize(float64(u.width), float64(u.height))
	return u, nil
}

// timers is the TimerFactory for the terminal build. Callbacks post into
// the actions channel so the Run loop stays the single owner of all state.
func (u *UI) timers(delay time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(delay, func() {
		select {
		case u.actions <- fn:
		case <-u.done:
		}
	})
	return func() {
		t.Stop()
	}
}

// cues is the intro timeline, built from the same offsets as the browser
// build.
func (u *UI) cues() []app.Cue {
	cues := []app.Cue{
		{After: app.BreathDelay, Action: func() {
			u.seq.Advance(app.PhaseBreath)
		}},
		{After: app.AwakeningDelay, Action: func() {
			u.seq.Advance(app.PhaseAwakening)
			u.field.Populate()
			u.speed.SetIdle(app.SpeedAmbient)
		}},
		{After: app.ReadyDelay, Action: func() {
			u.seq.Advance(app.PhaseReady)
			// Best-effort: no audio backend means a silent scene
			if err := u.drone.Start(); err == nil {
				u.drone.Chime()
			}
		}},
		{After: app.VisibleDelay, Action: func() {
			u.visible = true
		}},
	}
	for i, opacity := range app.PulseFade {
		op := opacity
		cues = append(cues, app.Cue{
			After:  app.BreathDelay + time.Duration(i)*app.PulseStep,
			Action: func() { u.pulse = op },
		})
	}
	return cues
}

// Run arms the timeline and drives the event loop until quit.
func (u *UI) Run() error {
	defer u.teardown()

	u.seq.Arm(u.cues())

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-u.done:
				return
			}
		}
	}()

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			u.frame()
		case act := <-u.actions:
			act()
		case ev := <-events:
			if u.handleEvent(ev) {
				return nil
			}
		}
	}
}

func (u *UI) teardown() {
	close(u.done)
	u.seq.CancelAll()
	u.speed.CancelPending()
	u.drone.Stop()
	u.screen.Fini()
}

// handleEvent processes one terminal event. Returns true to quit.
func (u *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.width, u.height = u.screen.Size()
		u.field.Resize(float64(u.width), float64(u.height))
		u.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			u.speed.Burst()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(u.vision) > 0 {
				u.vision = u.vision[:len(u.vision)-1]
				u.speed.SetVision(string(u.vision))
			}
		case tcell.KeyRune:
			u.vision = append(u.vision, ev.Rune())
			u.speed.SetVision(string(u.vision))
		}
	}
	return false
}

// frame advances the simulation and redraws the screen.
func (u *UI) frame() {
	u.speed.Step()
	ops := u.field.Frame(u.speed.Current)

	u.screen.Clear()

	if u.seq.Phase() == app.PhaseBreath {
		u.drawPulse()
	}

	for i := range ops {
		op := &ops[i]
		if op.Trail {
			u.drawTrail(op)
		}

		x, y := int(op.X), int(op.Y)
		if x < 0 || x >= u.width || y < 0 || y >= u.height {
			continue
		}
		u.screen.SetContent(x, y, starRune(op.Size), nil, grayStyle(op.Opacity))
	}

	u.drawStatus()
	u.screen.Show()
}

// drawTrail interpolates dim points between the trail anchor and the
// current projection, approximating the canvas motion-blur line.
func (u *UI) drawTrail(op *app.StarOp) {
	const steps = 6
	dx := op.X - op.TrailFromX
	dy := op.Y - op.TrailFromY
	for i := 1; i < steps; i++ {
		progress := float64(i) / steps
		x := int(op.TrailFromX + dx*progress)
		y := int(op.TrailFromY + dy*progress)
		if x < 0 || x >= u.width || y < 0 || y >= u.height {
			continue
		}
		u.screen.SetContent(x, y, '·', nil, grayStyle(op.TrailAlpha*progress))
	}
}

// drawPulse renders the breath pulse as a dim centered marker.
func (u *UI) drawPulse() {
	if u.pulse <= 0 {
		return
	}
	text := "( breathe )"
	x := (u.width - len(text)) / 2
	y := u.height / 2
	style := grayStyle(u.pulse * 2)
	for i, r := range text {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawStatus renders the phase line and, once the scene is ready, the
// vision prompt.
func (u *UI) drawStatus() {
	status := u.seq.Phase().String()
	if u.seq.Phase() >= app.PhaseAwakening {
		status = fmt.Sprintf("%s  speed %.4f", status, u.speed.Current)
	}
	u.putText(1, u.height-2, status, grayStyle(0.5))

	if u.seq.Phase() == app.PhaseReady && u.visible {
		prompt := "vision> " + string(u.vision)
		u.putText(1, u.height-1, prompt, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		hint := "[enter] begin  [esc] leave"
		u.putText(u.width-len(hint)-1, u.height-1, hint, grayStyle(0.4))
	}
}

func (u *UI) putText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		cx := x + i
		if cx < 0 || cx >= u.width || y < 0 || y >= u.height {
			continue
		}
		u.screen.SetContent(cx, y, r, nil, style)
	}
}

// starRune maps a projected size to a rune of growing weight.
func starRune(size float64) rune {
	switch {
	case size > 1.5:
		return '●'
	case size > 1.0:
		return '○'
	case size > 0.5:
		return '•'
	default:
		return '·'
	}
}

// grayStyle maps an opacity to a gray foreground style.
func grayStyle(opacity float64) tcell.Style {
	if opacity > 1 {
		opacity = 1
	}
	if opacity < 0 {
		opacity = 0
	}
	v := int32(40 + opacity*215)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v))
}
