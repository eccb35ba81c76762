package trail

import "time"

// InitialConfig controls where images sit before the pointer is first seen
type InitialConfig struct {
	X, Y          float64 // Offscreen parking position
	RotationRange float64 // Degrees, centred on zero
	Scale         float64
}

// FollowConfig controls the per-frame trailing tween
type FollowConfig struct {
	Duration float64 // seconds
	Scale    float64
	Ease     string
}

// WaveConfig controls the sinusoidal trailing wave. Off unless enabled.
type WaveConfig struct {
	Enabled   bool
	Amplitude float64 // pixels
	Frequency float64 // radians per millisecond of sample age
}

// DropConfig controls the idle drop transition
type DropConfig struct {
	Overshoot      float64 // Pixels below the viewport bottom edge
	RotationRange  float64 // Degrees, centred on zero
	Scale          float64
	Duration       float64 // seconds
	DurationJitter float64 // seconds, added uniformly in [0, jitter)
	Stagger        float64 // seconds per image ordinal
	Ease           string
}

// RecallConfig controls the transition back to the pointer
type RecallConfig struct {
	Duration float64 // seconds
	Scale    float64
	Ease     string
}

// Config contains all cursor trail tuning
type Config struct {
	HistoryLength     int           // Max pointer samples kept, newest first
	ReshuffleInterval time.Duration // Minimum time between stacking reshuffles
	DropDelay         time.Duration // Pointer idle time before images drop

	Initial InitialConfig
	Follow  FollowConfig
	Wave    WaveConfig
	Drop    DropConfig
	Recall  RecallConfig
}

// DefaultConfig returns the stock trail tuning
func DefaultConfig() Config {
	return Config{
		HistoryLength:     20,
		ReshuffleInterval: 300 * time.Millisecond,
		DropDelay:         500 * time.Millisecond,

		Initial: InitialConfig{
			X:             -1000,
			Y:             -1000,
			RotationRange: 20,
			Scale:         1,
		},
		Follow: FollowConfig{
			Duration: 0.3,
			Scale:    1.5,
			Ease:     "power1.out",
		},
		Wave: WaveConfig{
			Enabled:   false,
			Amplitude: 15,
			Frequency: 0.005,
		},
		Drop: DropConfig{
			Overshoot:      100,
			RotationRange:  60,
			Scale:          1.5,
			Duration:       1.0,
			DurationJitter: 0.5,
			Stagger:        0.1,
			Ease:           "power1.out",
		},
		Recall: RecallConfig{
			Duration: 0.8,
			Scale:    1.5,
			Ease:     "back.out(0.7)",
		},
	}
}
