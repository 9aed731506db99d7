// Package pacer runs an adaptive production loop: it emits values as a
// suspendable sequence, measures how quickly the consumer pulls them, and
// feeds that latency into a cadence policy which picks the delay before
// the next emission.
//
// Usage:
//
//	adj, _ := cadence.NewPID(cadence.DefaultPIDConfig(500 * time.Millisecond))
//	p := pacer.New(emit, adj)
//	vals, err := seq.AsyncCollect(ctx, seq.AsyncTake(p.Sequence(), 100))
package pacer
