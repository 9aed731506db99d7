package cadence

import "time"

// Adjuster adapts the delay between emissions from the latency a consumer
// exhibits between pulls. Adjust is called once per completed cycle with
// the observed latency and returns the delay to wait before the next
// emission.
type Adjuster interface {
	Adjust(observed time.Duration) time.Duration
}

func clampDuration(d, min, max time.Duration) time.Duration {
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}
