package cadence

import (
	"time"

	"github.com/kbukum/seqkit/validation"
)

// ThresholdConfig configures the dead-band threshold policy.
type ThresholdConfig struct {
	// Target is the latency the policy steers toward.
	Target time.Duration `yaml:"target" mapstructure:"target" validate:"required,gt=0"`
	// Band is the half-width of the dead band around Target. Observations
	// inside [Target-Band, Target+Band] leave the delay unchanged.
	Band time.Duration `yaml:"band" mapstructure:"band" validate:"gte=0"`
	// Step is the fixed amount the delay moves per out-of-band observation.
	Step time.Duration `yaml:"step" mapstructure:"step" validate:"required,gt=0"`
	// MinDelay and MaxDelay bound the returned delay.
	MinDelay time.Duration `yaml:"min_delay" mapstructure:"min_delay" validate:"gte=0"`
	MaxDelay time.Duration `yaml:"max_delay" mapstructure:"max_delay" validate:"required,gtfield=MinDelay"`
	// InitialDelay seeds the policy before the first observation.
	InitialDelay time.Duration `yaml:"initial_delay" mapstructure:"initial_delay" validate:"gte=0"`
}

// DefaultThresholdConfig returns a threshold configuration steering toward
// the given target latency.
func DefaultThresholdConfig(target time.Duration) ThresholdConfig {
	return ThresholdConfig{
		Target:       target,
		Band:         200 * time.Millisecond,
		Step:         50 * time.Millisecond,
		MinDelay:     10 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		InitialDelay: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for internal consistency.
func (c ThresholdConfig) Validate() error {
	return validation.ValidateStruct(c)
}

// Threshold is a dead-band stepping policy. Observations slower than the
// target band shrink the delay by one step, faster observations grow it,
// and in-band observations leave it alone.
type Threshold struct {
	cfg   ThresholdConfig
	delay time.Duration
}

// NewThreshold creates a threshold adjuster from a validated configuration.
func NewThreshold(cfg ThresholdConfig) (*Threshold, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Threshold{
		cfg:   cfg,
		delay: clampDuration(cfg.InitialDelay, cfg.MinDelay, cfg.MaxDelay),
	}, nil
}

// Adjust moves the delay one step toward the target band and returns the
// clamped result.
func (t *Threshold) Adjust(observed time.Duration) time.Duration {
	switch {
	case observed < t.cfg.Target-t.cfg.Band:
		t.delay += t.cfg.Step
	case observed > t.cfg.Target+t.cfg.Band:
		t.delay -= t.cfg.Step
	}
	t.delay = clampDuration(t.delay, t.cfg.MinDelay, t.cfg.MaxDelay)
	return t.delay
}

// Delay returns the current delay without adjusting it.
func (t *Threshold) Delay() time.Duration {
	return t.delay
}
