// Package cadence provides pluggable pacing policies for adaptive
// producers.
//
// An Adjuster maps the latency observed by a consumer to the delay a
// production loop should wait before its next emission. Two strategies
// are provided: a dead-band threshold policy and a PID controller with
// integral clamping (anti-windup).
//
// Adjusters are stateful and single-writer: one production loop owns one
// adjuster instance. Sharing an adjuster across concurrent producers
// without external synchronization is unsupported.
//
// Usage:
//
//	cfg := cadence.DefaultPIDConfig(500 * time.Millisecond)
//	adj, err := cadence.NewPID(cfg)
//	...
//	delay := adj.Adjust(observedLatency)
package cadence
