package seq

import "context"

// Async represents a lazy, possibly infinite suspendable sequence.
// Pulling may block the calling goroutine until the upstream source
// produces the next element; every suspension point honors ctx.
type Async[T any] struct {
	create func(ctx context.Context) AsyncIterator[T]
}

// --- Constructors ---

// NewAsync creates an async sequence from a factory that produces an
// AsyncIterator. The factory is invoked once per materialization.
func NewAsync[T any](fn func(ctx context.Context) AsyncIterator[T]) *Async[T] {
	return &Async[T]{create: fn}
}

// FromAsync creates an async sequence over an existing AsyncIterator.
// The resulting sequence is single-use.
func FromAsync[T any](iter AsyncIterator[T]) *Async[T] {
	return &Async[T]{
		create: func(_ context.Context) AsyncIterator[T] {
			return iter
		},
	}
}

// FromChannel creates an async sequence that yields values received from
// ch until it is closed. Pulling suspends while the channel is empty.
func FromChannel[T any](ch <-chan T) *Async[T] {
	return &Async[T]{
		create: func(_ context.Context) AsyncIterator[T] {
			return &rawChannelIter[T]{ch: ch}
		},
	}
}

// Iter returns a raw AsyncIterator over this sequence. The caller must
// Close() it.
func (s *Async[T]) Iter(ctx context.Context) AsyncIterator[T] {
	return s.create(ctx)
}

// --- Terminals ---

// AsyncCollect pulls all values and returns them as a slice. It suspends
// until the sequence is exhausted; on an infinite sequence it never
// returns unless ctx is canceled.
func AsyncCollect[T any](ctx context.Context, s *Async[T]) ([]T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	var out []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}

// AsyncForEach pulls all values and calls fn for each, in order.
// A non-nil error from fn aborts iteration and is returned unchanged.
func AsyncForEach[T any](ctx context.Context, s *Async[T], fn func(context.Context, T) error) error {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// AsyncReduce folds all values into a single accumulator, in order.
func AsyncReduce[T, A any](ctx context.Context, s *Async[T], init A, fn func(A, T) A) (A, error) {
	acc := init
	err := AsyncForEach(ctx, s, func(_ context.Context, val T) error {
		acc = fn(acc, val)
		return nil
	})
	return acc, err
}

// AsyncFirst pulls exactly one value, suspending until it is available.
// Returns ok == false if the sequence is empty.
func AsyncFirst[T any](ctx context.Context, s *Async[T]) (T, bool, error) {
	iter := s.create(ctx)
	defer iter.Close()
	return iter.Next(ctx)
}
