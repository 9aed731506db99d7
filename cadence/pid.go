package cadence

import (
	"time"

	"github.com/kbukum/seqkit/validation"
)

// PIDConfig configures the PID cadence policy.
type PIDConfig struct {
	// Target is the latency the controller steers toward.
	Target time.Duration `yaml:"target" mapstructure:"target" validate:"required,gt=0"`
	// KP, KI and KD are the proportional, integral and derivative gains.
	KP float64 `yaml:"kp" mapstructure:"kp" validate:"gte=0"`
	KI float64 `yaml:"ki" mapstructure:"ki" validate:"gte=0"`
	KD float64 `yaml:"kd" mapstructure:"kd" validate:"gte=0"`
	// MaxErrorSum clamps the accumulated error term so a long stretch of
	// one-sided error cannot wind the integral up without bound.
	MaxErrorSum time.Duration `yaml:"max_error_sum" mapstructure:"max_error_sum" validate:"required,gt=0"`
	// MinDelay and MaxDelay bound the returned delay.
	MinDelay time.Duration `yaml:"min_delay" mapstructure:"min_delay" validate:"gte=0"`
	MaxDelay time.Duration `yaml:"max_delay" mapstructure:"max_delay" validate:"required,gtfield=MinDelay"`
	// InitialDelay seeds the controller before the first observation.
	InitialDelay time.Duration `yaml:"initial_delay" mapstructure:"initial_delay" validate:"gte=0"`
}

// DefaultPIDConfig returns a PID configuration steering toward the given
// target latency.
func DefaultPIDConfig(target time.Duration) PIDConfig {
	return PIDConfig{
		Target:       target,
		KP:           0.4,
		KI:           0.05,
		KD:           0.2,
		MaxErrorSum:  10 * target,
		MinDelay:     10 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		InitialDelay: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for internal consistency.
func (c PIDConfig) Validate() error {
	return validation.ValidateStruct(c)
}

// PID is a proportional-integral-derivative cadence controller. The error
// signal is target minus observed latency, so slow consumers drive the
// delay down and fast consumers drive it up. The integral term is clamped
// to MaxErrorSum in both directions.
type PID struct {
	cfg       PIDConfig
	errorSum  time.Duration
	lastError time.Duration
	delay     time.Duration
}

// NewPID creates a PID adjuster from a validated configuration.
func NewPID(cfg PIDConfig) (*PID, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &PID{
		cfg:   cfg,
		delay: clampDuration(cfg.InitialDelay, cfg.MinDelay, cfg.MaxDelay),
	}, nil
}

// Adjust runs one control cycle and returns the clamped delay.
func (p *PID) Adjust(observed time.Duration) time.Duration {
	err := p.cfg.Target - observed

	p.errorSum = clampDuration(p.errorSum+err, -p.cfg.MaxErrorSum, p.cfg.MaxErrorSum)

	adjustment := time.Duration(
		p.cfg.KP*float64(err) +
			p.cfg.KI*float64(p.errorSum) +
			p.cfg.KD*float64(err-p.lastError),
	)
	p.lastError = err

	p.delay = clampDuration(p.delay+adjustment, p.cfg.MinDelay, p.cfg.MaxDelay)
	return p.delay
}

// Delay returns the current delay without adjusting it.
func (p *PID) Delay() time.Duration {
	return p.delay
}
