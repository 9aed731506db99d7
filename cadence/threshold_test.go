package cadence

import (
	"testing"
	"time"
)

func TestThreshold_InBandHoldsDelay(t *testing.T) {
	cfg := DefaultThresholdConfig(500 * time.Millisecond)
	adj, err := NewThreshold(cfg)
	if err != nil {
		t.Fatal(err)
	}
	start := adj.Delay()
	for _, observed := range []time.Duration{
		500 * time.Millisecond,
		350 * time.Millisecond,
		650 * time.Millisecond,
	} {
		if got := adj.Adjust(observed); got != start {
			t.Errorf("Adjust(%v) = %v, want unchanged %v", observed, got, start)
		}
	}
}

func TestThreshold_StepsTowardBand(t *testing.T) {
	cfg := DefaultThresholdConfig(500 * time.Millisecond)
	adj, err := NewThreshold(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Fast consumer: observed well below target, delay grows one step.
	got := adj.Adjust(100 * time.Millisecond)
	if got != cfg.InitialDelay+cfg.Step {
		t.Errorf("fast consumer: got %v, want %v", got, cfg.InitialDelay+cfg.Step)
	}

	// Slow consumer: observed well above target, delay shrinks one step.
	got = adj.Adjust(2 * time.Second)
	if got != cfg.InitialDelay {
		t.Errorf("slow consumer: got %v, want %v", got, cfg.InitialDelay)
	}
}

func TestThreshold_ClampsToBounds(t *testing.T) {
	cfg := ThresholdConfig{
		Target:       100 * time.Millisecond,
		Band:         10 * time.Millisecond,
		Step:         30 * time.Millisecond,
		MinDelay:     20 * time.Millisecond,
		MaxDelay:     80 * time.Millisecond,
		InitialDelay: 50 * time.Millisecond,
	}
	adj, err := NewThreshold(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		adj.Adjust(time.Second)
	}
	if adj.Delay() != cfg.MinDelay {
		t.Errorf("slow consumer floor: got %v, want %v", adj.Delay(), cfg.MinDelay)
	}

	for i := 0; i < 5; i++ {
		adj.Adjust(time.Millisecond)
	}
	if adj.Delay() != cfg.MaxDelay {
		t.Errorf("fast consumer ceiling: got %v, want %v", adj.Delay(), cfg.MaxDelay)
	}
}

func TestThreshold_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultThresholdConfig(500 * time.Millisecond)
	cfg.Step = 0
	if _, err := NewThreshold(cfg); err == nil {
		t.Error("expected error for zero step")
	}

	cfg = DefaultThresholdConfig(500 * time.Millisecond)
	cfg.MaxDelay = cfg.MinDelay
	if _, err := NewThreshold(cfg); err == nil {
		t.Error("expected error for max delay not above min delay")
	}
}
