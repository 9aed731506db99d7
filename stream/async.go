package stream

import (
	"context"

	"github.com/kbukum/seqkit/seq"
)

// AsyncStage is a single composable transformation step of an async
// pipeline.
type AsyncStage[T any] func(*seq.Async[T]) *seq.Async[T]

// AsyncLazy is a staged suspendable pipeline: a source plus an ordered
// list of stages, evaluated only on a terminal call.
type AsyncLazy[T any] struct {
	source *seq.Async[T]
	stages []AsyncStage[T]
}

// NewAsync creates a staged pipeline over the given async source. No
// iteration happens until a terminal call.
func NewAsync[T any](source *seq.Async[T]) *AsyncLazy[T] {
	return &AsyncLazy[T]{source: source}
}

// Apply appends an arbitrary stage and returns a new pipeline value. The
// receiver is never mutated.
func (l *AsyncLazy[T]) Apply(stage AsyncStage[T]) *AsyncLazy[T] {
	stages := make([]AsyncStage[T], len(l.stages), len(l.stages)+1)
	copy(stages, l.stages)
	stages = append(stages, stage)
	return &AsyncLazy[T]{source: l.source, stages: stages}
}

// Map appends a type-preserving transform stage; fn may suspend.
func (l *AsyncLazy[T]) Map(fn func(context.Context, T) (T, error)) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		return seq.AsyncMap(s, fn)
	})
}

// FlatMap appends a stage that expands each value into a nested async
// sequence of the same element type.
func (l *AsyncLazy[T]) FlatMap(fn func(context.Context, T) (*seq.Async[T], error)) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		return seq.AsyncFlatMap(s, fn)
	})
}

// Filter appends a predicate stage; the predicate may suspend.
func (l *AsyncLazy[T]) Filter(fn func(context.Context, T) (bool, error)) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		return seq.AsyncFilter(s, fn)
	})
}

// Take appends a stage bounding the pipeline to its first n values.
func (l *AsyncLazy[T]) Take(n int) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		return seq.AsyncTake(s, n)
	})
}

// Skip appends a stage discarding the first n values.
func (l *AsyncLazy[T]) Skip(n int) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		return seq.AsyncSkip(s, n)
	})
}

// Tap appends a side-effect stage; values pass through unchanged.
func (l *AsyncLazy[T]) Tap(fn func(context.Context, T) error) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		return seq.AsyncTap(s, fn)
	})
}

// Concat appends a stage that emits the pipeline's values followed by all
// values of each additional async sequence, strictly in order.
func (l *AsyncLazy[T]) Concat(others ...*seq.Async[T]) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		all := append([]*seq.Async[T]{s}, others...)
		return seq.AsyncConcat(all...)
	})
}

// Buffer appends a stage decoupling production from consumption.
func (l *AsyncLazy[T]) Buffer(size int) *AsyncLazy[T] {
	return l.Apply(func(s *seq.Async[T]) *seq.Async[T] {
		return seq.Buffer(s, size)
	})
}

// Materialize composes all stages left-to-right into a single lazy async
// sequence. The result has pulled nothing yet.
func (l *AsyncLazy[T]) Materialize() *seq.Async[T] {
	out := l.source
	for _, stage := range l.stages {
		out = stage(out)
	}
	return out
}

// --- Terminals ---

// Collect materializes the pipeline and pulls all values, suspending until
// the source is exhausted.
func (l *AsyncLazy[T]) Collect(ctx context.Context) ([]T, error) {
	return seq.AsyncCollect(ctx, l.Materialize())
}

// ForEach materializes the pipeline and calls fn for each value, in order.
func (l *AsyncLazy[T]) ForEach(ctx context.Context, fn func(context.Context, T) error) error {
	return seq.AsyncForEach(ctx, l.Materialize(), fn)
}

// Reduce materializes the pipeline and folds all values into a single
// accumulator of the element type.
func (l *AsyncLazy[T]) Reduce(ctx context.Context, init T, fn func(T, T) T) (T, error) {
	return seq.AsyncReduce(ctx, l.Materialize(), init, fn)
}

// First materializes the pipeline and pulls exactly one value, suspending
// until it is available.
func (l *AsyncLazy[T]) First(ctx context.Context) (T, bool, error) {
	return seq.AsyncFirst(ctx, l.Materialize())
}
