package seq

import (
	"context"
	"errors"
)

// ErrDrainOverflow is returned by ToSyncN when the async source yields
// more elements than the drain limit allows.
var ErrDrainOverflow = errors.New("seq: drain limit exceeded")

// ToSync fully drains an async sequence, in order, buffering every element,
// and returns a rebuildable sync sequence over the buffered collection. It
// suspends until the source is exhausted and never returns partial results:
// on error the partial buffer is discarded.
//
// On an infinite source ToSync only returns when ctx is canceled; use
// ToSyncN to bound the drain instead.
func ToSync[T any](ctx context.Context, s *Async[T]) (*Seq[T], error) {
	buf, err := AsyncCollect(ctx, s)
	if err != nil {
		return nil, err
	}
	return FromSlice(buf), nil
}

// ToSyncN drains like ToSync but fails with ErrDrainOverflow once the
// source yields more than max elements, instead of buffering without bound.
func ToSyncN[T any](ctx context.Context, s *Async[T], max int) (*Seq[T], error) {
	iter := s.create(ctx)
	defer iter.Close()
	buf := make([]T, 0, max)
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return FromSlice(buf), nil
		}
		if len(buf) == max {
			return nil, ErrDrainOverflow
		}
		buf = append(buf, val)
	}
}

// ToAsync re-exposes a sync sequence behind the suspendable contract. No
// artificial suspension is introduced: each pull delegates to the sync
// source immediately, checking ctx first so the result composes with async
// stages downstream.
func ToAsync[T any](s *Seq[T]) *Async[T] {
	return &Async[T]{
		create: func(_ context.Context) AsyncIterator[T] {
			return &syncAsAsyncIter[T]{source: s.create()}
		},
	}
}

type syncAsAsyncIter[T any] struct {
	source Iterator[T]
}

func (it *syncAsAsyncIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return it.source.Next()
}

func (it *syncAsAsyncIter[T]) Close() error { return it.source.Close() }
