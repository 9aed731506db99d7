// Package seq provides lazy, pull-based sequences in two execution modes
// and one shared operator vocabulary.
//
// A Seq is synchronous: pulling the next element never suspends — it is
// either available immediately or the sequence is exhausted. An Async is
// suspendable: pulling may block the calling goroutine until the upstream
// source produces the next element, honoring context cancellation at every
// suspension point.
//
// Both modes are lazy. Constructing a sequence or applying an operator
// performs no iteration; work happens one element at a time when a terminal
// (Collect, ForEach, Reduce, First, or raw iteration) pulls values through
// the chain. Operators preserve input order; no operator introduces
// parallel fan-out.
//
// # Operators
//
//   - Map / AsyncMap: transform each element
//   - Filter / AsyncFilter: keep elements matching a predicate
//   - FlatMap / AsyncFlatMap: expand each element into a nested sequence
//   - Flatten / AsyncFlatten: recursively unwrap tagged nested sequences
//   - Take, Skip and async counterparts: bound the visible prefix/suffix
//   - Concat / AsyncConcat: sequence-then-sequence, never interleaved
//   - Zip / AsyncZip: pair elements until the shorter side is exhausted
//   - Tap / AsyncTap: per-pull side effect, element passed through unchanged
//   - Buffer: decouple an async producer from its consumer (order preserved)
//
// # Conversion
//
// ToSync fully drains an Async into a buffered Seq; ToAsync re-exposes a Seq
// behind the suspendable contract without artificial delays. Round-tripping
// a finite sequence preserves element order and multiset exactly.
//
// # Errors
//
// Failures in a source or in a user-supplied stage function propagate
// unchanged to whichever terminal initiated the pull; no operator retries,
// skips, or swallows. A sequence that returned an error is left in an
// undefined state and must not be pulled again.
//
// Usage:
//
//	src := seq.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := seq.Map(src, func(n int) (int, error) { return n * 2, nil })
//	evens := seq.Filter(doubled, func(n int) bool { return n%2 == 0 })
//	results, _ := seq.Collect(evens)
package seq
