package term

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/stillfield/stillfield/audio"
)

func streamSeconds(g *DroneStreamer, seconds float64) {
	buf := make([][2]float64, 512)
	total := int(seconds * float64(g.sr))
	for total > 0 {
		n := len(buf)
		if total < n {
			n = total
		}
		if got, ok := g.Stream(buf[:n]); !ok || got != n {
			panic("streamer refused samples")
		}
		total -= n
	}
}

func TestDroneStreamer_AttackReachesDroneLevel(t *testing.T) {
	g := NewDroneStreamer(sampleRate)
	cfg := audio.AudioConfig

	if g.Level() != 0 {
		t.Fatalf("Expected a fresh streamer at silence, got level %f", g.Level())
	}

	streamSeconds(g, cfg.AttackSeconds/2)
	mid := g.Level()
	if mid <= 0 || mid >= cfg.DroneLevel {
		t.Errorf("Expected mid-attack level in (0, %f), got %f", cfg.DroneLevel, mid)
	}

	streamSeconds(g, cfg.AttackSeconds/2+0.1)
	if g.Level() != cfg.DroneLevel {
		t.Errorf("Expected the envelope pinned at %f after the attack, got %f",
			cfg.DroneLevel, g.Level())
	}
}

func TestDroneStreamer_ReleaseFadesToSilence(t *testing.T) {
	g := NewDroneStreamer(sampleRate)
	cfg := audio.AudioConfig
	streamSeconds(g, cfg.AttackSeconds+0.1)

	g.Release()
	streamSeconds(g, cfg.ReleaseSeconds+0.1)
	if g.Level() != 0 {
		t.Errorf("Expected silence after the release, got level %f", g.Level())
	}

	// Released output is flat zero
	buf := make([][2]float64, 64)
	g.Stream(buf)
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Sample %d not silent after release: %v", i, s)
		}
	}
}

func TestDroneStreamer_OutputBounded(t *testing.T) {
	g := NewDroneStreamer(sampleRate)
	cfg := audio.AudioConfig

	buf := make([][2]float64, 512)
	for i := 0; i < int(float64(sampleRate)*(cfg.AttackSeconds+1))/len(buf); i++ {
		g.Stream(buf)
		for _, s := range buf {
			if s[0] > cfg.DroneLevel || s[0] < -cfg.DroneLevel {
				t.Fatalf("Sample exceeds the drone level: %f", s[0])
			}
			if s[0] != s[1] {
				t.Fatal("Expected identical channels")
			}
		}
	}
}

func TestDroneStreamer_Err(t *testing.T) {
	g := NewDroneStreamer(sampleRate)
	if err := g.Err(); err != nil {
		t.Errorf("Expected a nil streamer error, got %v", err)
	}
}

func TestDrone_DisabledIgnoresStart(t *testing.T) {
	d := NewDrone(false)
	if err := d.Start(); err != nil {
		t.Errorf("Expected a disabled drone to ignore Start, got %v", err)
	}
	if d.ready {
		t.Error("Disabled drone marked itself ready")
	}
	// Safe without a running speaker
	d.Chime()
	d.Stop()
}

var _ beep.Streamer = (*DroneStreamer)(nil)
