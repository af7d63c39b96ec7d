package app

import (
	"math"
	"testing"
)

func TestSpeed_EaseConvergesWithoutOvershoot(t *testing.T) {
	testCases := []struct {
		name    string
		start   float64
		target  float64
	}{
		{"From below", 0, SpeedBurst},
		{"From above", SpeedBurst, SpeedAmbient},
		{"Already there", SpeedAmbient, SpeedAmbient},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock := &fakeClock{}
			c := NewSpeedController(clock.factory)
			c.Current = tc.start
			c.Target = tc.target

			prevDiff := math.Abs(c.Target - c.Current)
			startSign := math.Signbit(c.Target - c.Current)
			for i := 0; i < 1000; i++ {
				c.Step()
				diff := c.Target - c.Current
				if math.Abs(diff) > prevDiff+1e-15 {
					t.Fatalf("Step %d: distance to target grew: %g > %g", i, math.Abs(diff), prevDiff)
				}
				if diff != 0 && math.Signbit(diff) != startSign {
					t.Fatalf("Step %d: overshot the target", i)
				}
				prevDiff = math.Abs(diff)
			}
			if math.Abs(c.Target-c.Current) > 1e-9 {
				t.Errorf("Expected convergence, still %g away", math.Abs(c.Target-c.Current))
			}
		})
	}
}

func TestSpeed_VisionCoupling(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)
	c.SetIdle(SpeedAmbient)

	if c.Target != SpeedAmbient {
		t.Fatalf("Expected idle target %f, got %f", float64(SpeedAmbient), c.Target)
	}

	c.SetVision("a")
	if c.Target != SpeedThinking {
		t.Errorf("Expected thinking target %f, got %f", float64(SpeedThinking), c.Target)
	}

	c.SetVision("")
	if c.Target != SpeedAmbient {
		t.Errorf("Expected exact return to idle %f, got %f", float64(SpeedAmbient), c.Target)
	}
}

func TestSpeed_WhitespaceVisionIsEmpty(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)
	c.SetIdle(SpeedAmbient)

	c.SetVision("   \n\t  ")
	if c.HasVision() {
		t.Error("Whitespace-only vision should count as empty")
	}
	if c.Target != SpeedAmbient {
		t.Errorf("Expected idle target %f, got %f", float64(SpeedAmbient), c.Target)
	}
}

func TestSpeed_IdleBaselineDeferredWhileThinking(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)

	c.SetVision("something")
	c.SetIdle(SpeedAmbient)
	if c.Target != SpeedThinking {
		t.Errorf("Idle update should not override thinking, got %f", c.Target)
	}

	c.SetVision("")
	if c.Target != SpeedAmbient {
		t.Errorf("Expected new idle baseline %f after clearing, got %f", float64(SpeedAmbient), c.Target)
	}
}

func TestSpeed_BurstRequiresVision(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)
	c.SetIdle(SpeedAmbient)

	if c.Burst() {
		t.Error("Burst with empty vision should be rejected")
	}
	if c.Target != SpeedAmbient {
		t.Errorf("Rejected burst changed the target to %f", c.Target)
	}
}

func TestSpeed_BurstThenSustain(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)
	c.SetIdle(SpeedAmbient)
	c.SetVision("a vision")

	if !c.Burst() {
		t.Fatal("Burst with vision should succeed")
	}
	if c.Target != SpeedBurst {
		t.Fatalf("Expected immediate burst target %f, got %f", float64(SpeedBurst), c.Target)
	}

	// One tick short of the hold: still bursting
	clock.advance(BurstHold - 1)
	if c.Target != SpeedBurst {
		t.Errorf("Target decayed early: %f", c.Target)
	}

	clock.advance(1)
	if c.Target != SpeedSustained {
		t.Errorf("Expected sustained target %f after hold, got %f", float64(SpeedSustained), c.Target)
	}
}

func TestSpeed_RetriggerRestartsHold(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)
	c.SetVision("x")

	c.Burst()
	clock.advance(BurstHold / 2)
	c.Burst()
	clock.advance(BurstHold / 2)
	if c.Target != SpeedBurst {
		t.Errorf("Retrigger should restart the hold, got %f", c.Target)
	}
	clock.advance(BurstHold / 2)
	if c.Target != SpeedSustained {
		t.Errorf("Expected sustained after restarted hold, got %f", c.Target)
	}
}

func TestSpeed_VisionEditOverridesSustain(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)
	c.SetIdle(SpeedAmbient)
	c.SetVision("x")

	c.Burst()
	clock.advance(BurstHold)
	if c.Target != SpeedSustained {
		t.Fatalf("Expected sustained, got %f", c.Target)
	}

	// Last write wins: clearing the vision drops back to idle
	c.SetVision("")
	if c.Target != SpeedAmbient {
		t.Errorf("Expected idle after clearing, got %f", c.Target)
	}
}

func TestSpeed_CancelPendingStopsDecay(t *testing.T) {
	clock := &fakeClock{}
	c := NewSpeedController(clock.factory)
	c.SetVision("x")

	c.Burst()
	c.CancelPending()
	clock.advance(BurstHold * 2)
	if c.Target != SpeedBurst {
		t.Errorf("Canceled decay still fired, target %f", c.Target)
	}
}
