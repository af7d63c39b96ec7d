package audio

type Config struct {
	// Drone voice
	DroneFrequency float64 // Oscillator frequency in Hz
	FilterCutoff   float64 // Low-pass cutoff in Hz
	FilterQ        float64 // Filter resonance
	DroneLevel     float64 // Gain target after the attack ramp
	AttackSeconds  float64 // Linear ramp from silence to DroneLevel
	ReleaseSeconds float64 // Linear ramp back to silence on stop

	// Ready chime
	ChimeFrequency float64 // Fundamental in Hz
	ChimeLevel     float64 // Peak envelope gain
	ChimeSeconds   float64 // Decay length
}

// AudioConfig is the tuning for the ambient bed. One low sine through a
// gentle low-pass, felt more than heard.
var AudioConfig = Config{
	DroneFrequency: 40,
	FilterCutoff:   80,
	FilterQ:        1,
	DroneLevel:     0.08,
	AttackSeconds:  2,
	ReleaseSeconds: 0.5,

	ChimeFrequency: 528,
	ChimeLevel:     0.04,
	ChimeSeconds:   4,
}
