package animation

import "time"

// DefaultConfig returns a ~1.1s pulse in 10% opacity steps.
func DefaultConfig() Config {
	return Config{
		StepPercent: 10,
		StepDelay:   50 * time.Millisecond,
		Blocking:    true,
	}
}
