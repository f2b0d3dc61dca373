package winput

import "time"

// Config configures reducer behavior.
type Config struct {
	// TapRadius is the maximum Euclidean distance in logical pixels
	// between consecutive taps for them to count as one cluster.
	TapRadius float64

	// TapWindow is the maximum time between a release and the next press
	// for them to count as one cluster.
	TapWindow time.Duration

	// MaxPressAge, when positive, expires a tap cluster whose press never
	// received a matching release or cancel after this much time. Zero
	// disables the bound: pressed clusters then live until their pointer
	// releases, cancels, or leaves.
	MaxPressAge time.Duration
}

// DefaultConfig returns sensible default configuration, approximating
// common OS double-click heuristics.
func DefaultConfig() Config {
	return Config{
		TapRadius: 4.0,
		TapWindow: 500 * time.Millisecond,
	}
}
