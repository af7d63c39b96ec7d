package term

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/stillfield/stillfield/audio"
)

const sampleRate = beep.SampleRate(44100)

// DroneStreamer synthesizes the ambient bed natively: the configured sine
// through a one-pole low-pass, with a linear attack envelope up to the
// drone level and a linear release back to silence.
type DroneStreamer struct {
	sr        beep.SampleRate
	pos       int
	level     float64
	attack    float64 // per-sample level increment
	release   float64 // per-sample level decrement
	releasing bool
	lp        float64
	lpAlpha   float64
}

// NewDroneStreamer creates a drone streamer at silence.
func NewDroneStreamer(sr beep.SampleRate) *DroneStreamer {
	cfg := audio.AudioConfig
	return &DroneStreamer{
		sr:      sr,
		attack:  cfg.DroneLevel / (cfg.AttackSeconds * float64(sr)),
		release: cfg.DroneLevel / (cfg.ReleaseSeconds * float64(sr)),
		lpAlpha: 1 - math.Exp(-2*math.Pi*cfg.FilterCutoff/float64(sr)),
	}
}

func (g *DroneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	cfg := audio.AudioConfig
	for i := range samples {
		if g.releasing {
			g.level -= g.release
			if g.level < 0 {
				g.level = 0
			}
		} else if g.level < cfg.DroneLevel {
			g.level += g.attack
			if g.level > cfg.DroneLevel {
				g.level = cfg.DroneLevel
			}
		}

		t := float64(g.pos) / float64(g.sr)
		s := math.Sin(2 * math.Pi * cfg.DroneFrequency * t)
		g.lp += g.lpAlpha * (s - g.lp)
		out := g.lp * g.level

		samples[i][0] = out
		samples[i][1] = out
		g.pos++
	}
	return len(samples), true
}

func (g *DroneStreamer) Err() error {
	return nil
}

// Release begins the fade back to silence.
func (g *DroneStreamer) Release() {
	g.releasing = true
}

// Level returns the current envelope level.
func (g *DroneStreamer) Level() float64 {
	return g.level
}

// Drone is the native ambient audio driver. Best-effort: a failed speaker
// init leaves the scene silent.
type Drone struct {
	streamer *DroneStreamer
	ctrl     *beep.Ctrl
	enabled  bool
	ready    bool
}

// NewDrone creates the driver. A disabled drone ignores Start.
func NewDrone(enabled bool) *Drone {
	return &Drone{enabled: enabled}
}

// Start initializes the speaker and fades the drone in. No-op when already
// running or disabled.
func (d *Drone) Start() error {
	if !d.enabled || d.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	d.streamer = NewDroneStreamer(sampleRate)
	d.ctrl = &beep.Ctrl{Streamer: d.streamer}
	speaker.Play(d.ctrl)
	d.ready = true
	return nil
}

// Chime plays a short soft tone marking the scene becoming ready.
func (d *Drone) Chime() {
	if !d.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, audio.AudioConfig.ChimeFrequency)
	if err != nil {
		return
	}
	tone := beep.Take(sampleRate.N(300*time.Millisecond), sine)
	speaker.Play(&effects.Gain{Streamer: tone, Gain: -0.9})
}

// Stop fades the drone out. The speaker keeps running until process exit;
// the release ramp avoids a click.
func (d *Drone) Stop() {
	if !d.ready {
		return
	}
	speaker.Lock()
	d.streamer.Release()
	speaker.Unlock()
	d.ready = false
}
