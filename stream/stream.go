package stream

import "github.com/kbukum/seqkit/seq"

// Stage is a single composable transformation step of a sync pipeline.
type Stage[T any] func(*seq.Seq[T]) *seq.Seq[T]

// Lazy is a staged synchronous pipeline: a source plus an ordered list of
// stages, evaluated only on a terminal call.
type Lazy[T any] struct {
	source *seq.Seq[T]
	stages []Stage[T]
}

// New creates a staged pipeline over the given source. No iteration
// happens until a terminal call.
func New[T any](source *seq.Seq[T]) *Lazy[T] {
	return &Lazy[T]{source: source}
}

// Apply appends an arbitrary stage and returns a new pipeline value. The
// receiver is never mutated.
func (l *Lazy[T]) Apply(stage Stage[T]) *Lazy[T] {
	stages := make([]Stage[T], len(l.stages), len(l.stages)+1)
	copy(stages, l.stages)
	stages = append(stages, stage)
	return &Lazy[T]{source: l.source, stages: stages}
}

// Map appends a type-preserving transform stage.
func (l *Lazy[T]) Map(fn func(T) (T, error)) *Lazy[T] {
	return l.Apply(func(s *seq.Seq[T]) *seq.Seq[T] {
		return seq.Map(s, fn)
	})
}

// FlatMap appends a stage that expands each value into a nested sequence
// of the same element type.
func (l *Lazy[T]) FlatMap(fn func(T) (*seq.Seq[T], error)) *Lazy[T] {
	return l.Apply(func(s *seq.Seq[T]) *seq.Seq[T] {
		return seq.FlatMap(s, fn)
	})
}

// Filter appends a predicate stage.
func (l *Lazy[T]) Filter(fn func(T) bool) *Lazy[T] {
	return l.Apply(func(s *seq.Seq[T]) *seq.Seq[T] {
		return seq.Filter(s, fn)
	})
}

// Take appends a stage bounding the pipeline to its first n values.
func (l *Lazy[T]) Take(n int) *Lazy[T] {
	return l.Apply(func(s *seq.Seq[T]) *seq.Seq[T] {
		return seq.Take(s, n)
	})
}

// Skip appends a stage discarding the first n values.
func (l *Lazy[T]) Skip(n int) *Lazy[T] {
	return l.Apply(func(s *seq.Seq[T]) *seq.Seq[T] {
		return seq.Skip(s, n)
	})
}

// Tap appends a side-effect stage; values pass through unchanged.
func (l *Lazy[T]) Tap(fn func(T) error) *Lazy[T] {
	return l.Apply(func(s *seq.Seq[T]) *seq.Seq[T] {
		return seq.Tap(s, fn)
	})
}

// Concat appends a stage that emits the pipeline's values followed by all
// values of each additional sequence, in order.
func (l *Lazy[T]) Concat(others ...*seq.Seq[T]) *Lazy[T] {
	return l.Apply(func(s *seq.Seq[T]) *seq.Seq[T] {
		all := append([]*seq.Seq[T]{s}, others...)
		return seq.Concat(all...)
	})
}

// Zip pairs a staged pipeline with another sequence positionally,
// truncating to the shorter side. Pairing changes the element type, so the
// result is a plain sequence rather than a pipeline of T.
func Zip[T, U any](l *Lazy[T], other *seq.Seq[U]) *seq.Seq[seq.Pair[T, U]] {
	return seq.Zip(l.Materialize(), other)
}

// Materialize composes all stages left-to-right into a single lazy
// sequence. The result has pulled nothing yet.
func (l *Lazy[T]) Materialize() *seq.Seq[T] {
	out := l.source
	for _, stage := range l.stages {
		out = stage(out)
	}
	return out
}

// --- Terminals ---

// Collect materializes the pipeline and pulls all values.
func (l *Lazy[T]) Collect() ([]T, error) {
	return seq.Collect(l.Materialize())
}

// ForEach materializes the pipeline and calls fn for each value, in order.
func (l *Lazy[T]) ForEach(fn func(T) error) error {
	return seq.ForEach(l.Materialize(), fn)
}

// Reduce materializes the pipeline and folds all values into a single
// accumulator of the element type. For a differently-typed accumulator use
// seq.Reduce over Materialize().
func (l *Lazy[T]) Reduce(init T, fn func(T, T) T) (T, error) {
	return seq.Reduce(l.Materialize(), init, fn)
}

// First materializes the pipeline and pulls exactly one value.
func (l *Lazy[T]) First() (T, bool, error) {
	return seq.First(l.Materialize())
}
