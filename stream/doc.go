// Package stream provides staged lazy pipelines over package seq.
//
// A Lazy (or AsyncLazy) records composition as data: a source sequence
// plus an ordered list of stage functions. Where a seq chain nests wrapped
// sources directly, a staged pipeline defers even the wrapping — stages
// are applied left-to-right only when a terminal call materializes the
// pipeline. The output is functionally equivalent to chaining the seq
// operators directly.
//
// Chain calls never mutate the receiver: each appends to a copy of the
// stage list and returns a new pipeline value, so pipelines can be shared
// and branched safely.
//
// Re-materializing the same pipeline re-runs the full chain from the
// original source. If the source is single-use (a live producer, a
// consumed channel), the second run observes whatever the source yields at
// that time; that is the caller's responsibility.
//
// Usage:
//
//	base := stream.New(seq.Range(1, 100))
//	evens := base.Filter(func(n int) bool { return n%2 == 0 }).Take(10)
//	out, _ := evens.Collect()
package stream
