package audio

// Drone drives the ambient bed through the Web Audio API: a low sine
// oscillator into a low-pass filter into a gain stage that ramps up from
// silence. Everything here is best-effort; when the context cannot be
// constructed (old runtime, autoplay policy) the scene simply runs silent.

import "github.com/gopherjs/gopherjs/js"

type Drone struct {
	ctx      *js.Object
	osc      *js.Object
	filter   *js.Object
	gain     *js.Object
	ready    bool
	started  bool
	AudioCtx *js.Object // Exposed for state checking
}

// NewDrone creates the driver without touching the audio runtime.
func NewDrone() *Drone {
	return &Drone{}
}

// Started reports whether Start has run, regardless of whether a context
// could actually be constructed.
func (d *Drone) Started() bool {
	return d.started
}

// Start constructs the node chain and ramps the drone in. Called once when
// the scene reaches its terminal phase; repeat calls are no-ops.
func (d *Drone) Start() {
	if d.started {
		return
	}
	d.started = true

	if js.Global == nil {
		return
	}

	// Try to create AudioContext
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return
	}

	d.ctx = audioCtx.New()
	d.AudioCtx = d.ctx // Expose for state checking

	d.osc = d.ctx.Call("createOscillator")
	d.osc.Set("type", "sine")
	d.osc.Get("frequency").Set("value", AudioConfig.DroneFrequency)

	d.filter = d.ctx.Call("createBiquadFilter")
	d.filter.Set("type", "lowpass")
	d.filter.Get("frequency").Set("value", AudioConfig.FilterCutoff)
	d.filter.Get("Q").Set("value", AudioConfig.FilterQ)

	d.gain = d.ctx.Call("createGain")
	d.gain.Get("gain").Set("value", 0)

	d.osc.Call("connect", d.filter)
	d.filter.Call("connect", d.gain)
	d.gain.Call("connect", d.ctx.Get("destination"))

	now := d.ctx.Get("currentTime").Float()
	d.gain.Get("gain").Call("setValueAtTime", 0, now)
	d.gain.Get("gain").Call("linearRampToValueAtTime",
		AudioConfig.DroneLevel, now+AudioConfig.AttackSeconds)

	d.osc.Call("start", 0)
	d.ready = true
}

// Resume resumes a context suspended by the autoplay policy. Wired to the
// first pointer interaction.
func (d *Drone) Resume() {
	if !d.ready {
		return
	}
	if d.ctx.Get("state").String() == "suspended" {
		d.ctx.Call("resume")
	}
}

// Chime plays a soft two-partial bell on the drone's context, enveloped to
// silence. Marks the scene becoming ready.
func (d *Drone) Chime() {
	if !d.ready {
		return
	}

	now := d.ctx.Get("currentTime").Float()

	for i, partial := range []float64{1, 1.5} {
		osc := d.ctx.Call("createOscillator")
		osc.Set("type", "sine")
		osc.Get("frequency").Set("value", AudioConfig.ChimeFrequency*partial)

		gain := d.ctx.Call("createGain")
		level := AudioConfig.ChimeLevel / float64(i+1)
		gain.Get("gain").Call("setValueAtTime", 0, now)
		gain.Get("gain").Call("linearRampToValueAtTime", level, now+0.05)
		gain.Get("gain").Call("exponentialRampToValueAtTime", 0.0001,
			now+AudioConfig.ChimeSeconds)

		osc.Call("connect", gain)
		gain.Call("connect", d.ctx.Get("destination"))
		osc.Call("start", now)
		osc.Call("stop", now+AudioConfig.ChimeSeconds)
	}
}

// Stop ramps the drone out, stops the oscillator and closes the context.
// Safe to call without a successful Start.
func (d *Drone) Stop() {
	if !d.ready {
		return
	}
	d.ready = false

	release := AudioConfig.ReleaseSeconds
	now := d.ctx.Get("currentTime").Float()
	d.gain.Get("gain").Call("cancelScheduledValues", now)
	d.gain.Get("gain").Call("setValueAtTime", d.gain.Get("gain").Get("value"), now)
	d.gain.Get("gain").Call("linearRampToValueAtTime", 0, now+release)
	d.osc.Call("stop", now+release+0.1)

	ctx := d.ctx
	js.Global.Call("setTimeout", func() {
		ctx.Call("close")
	}, int(release*1000)+200)

	d.ctx = nil
	d.AudioCtx = nil
}
