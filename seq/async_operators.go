package seq

import "context"

// AsyncMap transforms each value using fn. fn may itself suspend; ordering
// is preserved.
func AsyncMap[I, O any](s *Async[I], fn func(context.Context, I) (O, error)) *Async[O] {
	return &Async[O]{
		create: func(ctx context.Context) AsyncIterator[O] {
			return &asyncMapIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// AsyncFlatMap expands each value into a nested async sequence and emits
// all of its elements, in order, before moving to the next input value.
func AsyncFlatMap[I, O any](s *Async[I], fn func(context.Context, I) (*Async[O], error)) *Async[O] {
	return &Async[O]{
		create: func(ctx context.Context) AsyncIterator[O] {
			return &asyncFlatMapIter[I, O]{ctx: ctx, source: s.create(ctx), fn: fn}
		},
	}
}

// AsyncFilter keeps only values that satisfy the predicate. The predicate
// may itself suspend; ordering is preserved.
func AsyncFilter[T any](s *Async[T], fn func(context.Context, T) (bool, error)) *Async[T] {
	return &Async[T]{
		create: func(ctx context.Context) AsyncIterator[T] {
			return &asyncFilterIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// AsyncTap calls fn as a side effect for each value, then passes the value
// through unchanged. The side effect fires once per pull, never eagerly.
func AsyncTap[T any](s *Async[T], fn func(context.Context, T) error) *Async[T] {
	return &Async[T]{
		create: func(ctx context.Context) AsyncIterator[T] {
			return &asyncTapIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// AsyncTake emits at most the first n values. Once n values have been
// emitted the upstream source is not pulled again, so an infinite source
// stops being driven.
func AsyncTake[T any](s *Async[T], n int) *Async[T] {
	return &Async[T]{
		create: func(ctx context.Context) AsyncIterator[T] {
			return &asyncTakeIter[T]{source: s.create(ctx), remaining: n}
		},
	}
}

// AsyncSkip discards the first n values and emits the rest.
func AsyncSkip[T any](s *Async[T], n int) *Async[T] {
	return &Async[T]{
		create: func(ctx context.Context) AsyncIterator[T] {
			return &asyncSkipIter[T]{source: s.create(ctx), skip: n}
		},
	}
}

// AsyncConcat joins async sequences sequentially. The second source is not
// pulled until the first is fully exhausted, even if it would be ready
// sooner.
func AsyncConcat[T any](seqs ...*Async[T]) *Async[T] {
	return &Async[T]{
		create: func(ctx context.Context) AsyncIterator[T] {
			iters := make([]AsyncIterator[T], len(seqs))
			for i, s := range seqs {
				iters[i] = s.create(ctx)
			}
			return &asyncConcatIter[T]{iters: iters}
		},
	}
}

// AsyncZip pairs elements of a and b positionally. The output ends as soon
// as either side is exhausted.
func AsyncZip[A, B any](a *Async[A], b *Async[B]) *Async[Pair[A, B]] {
	return &Async[Pair[A, B]]{
		create: func(ctx context.Context) AsyncIterator[Pair[A, B]] {
			return &asyncZipIter[A, B]{left: a.create(ctx), right: b.create(ctx)}
		},
	}
}

// Buffer adds a buffered channel between an async sequence and its
// consumer, decoupling production rate from consumption rate. Ordering is
// preserved.
func Buffer[T any](s *Async[T], size int) *Async[T] {
	if size <= 0 {
		size = 1
	}
	return &Async[T]{
		create: func(ctx context.Context) AsyncIterator[T] {
			source := s.create(ctx)
			bufCtx, cancel := context.WithCancel(ctx)
			ch := make(chan result[T], size)

			go func() {
				defer close(ch)
				for {
					val, ok, err := source.Next(bufCtx)
					if err != nil {
						select {
						case ch <- result[T]{err: err}:
						case <-bufCtx.Done():
						}
						return
					}
					if !ok {
						return
					}
					select {
					case ch <- result[T]{val: val, ok: true}:
					case <-bufCtx.Done():
						return
					}
				}
			}()

			return &channelIter[T]{
				ch: ch,
				closer: func() error {
					cancel()
					return source.Close()
				},
			}
		},
	}
}

// --- Iterator implementations ---

type asyncMapIter[I, O any] struct {
	source AsyncIterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *asyncMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *asyncMapIter[I, O]) Close() error { return it.source.Close() }

type asyncFlatMapIter[I, O any] struct {
	ctx     context.Context
	source  AsyncIterator[I]
	fn      func(context.Context, I) (*Async[O], error)
	current AsyncIterator[O]
}

func (it *asyncFlatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				var zero O
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		inner, err := it.fn(ctx, in)
		if err != nil {
			var zero O
			return zero, false, err
		}
		it.current = inner.create(it.ctx)
	}
}

func (it *asyncFlatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type asyncFilterIter[T any] struct {
	source AsyncIterator[T]
	fn     func(context.Context, T) (bool, error)
}

func (it *asyncFilterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		keep, err := it.fn(ctx, val)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if keep {
			return val, true, nil
		}
	}
}

func (it *asyncFilterIter[T]) Close() error { return it.source.Close() }

type asyncTapIter[T any] struct {
	source AsyncIterator[T]
	fn     func(context.Context, T) error
}

func (it *asyncTapIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *asyncTapIter[T]) Close() error { return it.source.Close() }

type asyncTakeIter[T any] struct {
	source    AsyncIterator[T]
	remaining int
}

func (it *asyncTakeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *asyncTakeIter[T]) Close() error { return it.source.Close() }

type asyncSkipIter[T any] struct {
	source AsyncIterator[T]
	skip   int
}

func (it *asyncSkipIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.skip > 0 {
		_, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		it.skip--
	}
	return it.source.Next(ctx)
}

func (it *asyncSkipIter[T]) Close() error { return it.source.Close() }

type asyncConcatIter[T any] struct {
	iters []AsyncIterator[T]
	index int
}

func (it *asyncConcatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *asyncConcatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type asyncZipIter[A, B any] struct {
	left  AsyncIterator[A]
	right AsyncIterator[B]
}

func (it *asyncZipIter[A, B]) Next(ctx context.Context) (Pair[A, B], bool, error) {
	a, ok, err := it.left.Next(ctx)
	if err != nil || !ok {
		return Pair[A, B]{}, false, err
	}
	b, ok, err := it.right.Next(ctx)
	if err != nil || !ok {
		return Pair[A, B]{}, false, err
	}
	return Pair[A, B]{Left: a, Right: b}, true, nil
}

func (it *asyncZipIter[A, B]) Close() error {
	leftErr := it.left.Close()
	if err := it.right.Close(); err != nil && leftErr == nil {
		return err
	}
	return leftErr
}
