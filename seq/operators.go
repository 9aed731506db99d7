package seq

// Map transforms each value using fn. Ordering is preserved.
func Map[I, O any](s *Seq[I], fn func(I) (O, error)) *Seq[O] {
	return &Seq[O]{
		create: func() Iterator[O] {
			return &mapIter[I, O]{source: s.create(), fn: fn}
		},
	}
}

// FlatMap expands each value into a nested sequence and emits all of its
// elements, in order, before moving to the next input value.
func FlatMap[I, O any](s *Seq[I], fn func(I) (*Seq[O], error)) *Seq[O] {
	return &Seq[O]{
		create: func() Iterator[O] {
			return &flatMapIter[I, O]{source: s.create(), fn: fn}
		},
	}
}

// Filter keeps only values that satisfy the predicate. Ordering is preserved.
func Filter[T any](s *Seq[T], fn func(T) bool) *Seq[T] {
	return &Seq[T]{
		create: func() Iterator[T] {
			return &filterIter[T]{source: s.create(), fn: fn}
		},
	}
}

// Tap calls fn as a side effect for each value, then passes the value
// through unchanged. The side effect fires once per pull, never eagerly.
func Tap[T any](s *Seq[T], fn func(T) error) *Seq[T] {
	return &Seq[T]{
		create: func() Iterator[T] {
			return &tapIter[T]{source: s.create(), fn: fn}
		},
	}
}

// Take emits at most the first n values. Once n values have been emitted
// the upstream source is not pulled again.
func Take[T any](s *Seq[T], n int) *Seq[T] {
	return &Seq[T]{
		create: func() Iterator[T] {
			return &takeIter[T]{source: s.create(), remaining: n}
		},
	}
}

// Skip discards the first n values and emits the rest.
func Skip[T any](s *Seq[T], n int) *Seq[T] {
	return &Seq[T]{
		create: func() Iterator[T] {
			return &skipIter[T]{source: s.create(), skip: n}
		},
	}
}

// Concat joins sequences sequentially. All values from the first sequence
// are emitted before the second, and so on; sources are never interleaved.
func Concat[T any](seqs ...*Seq[T]) *Seq[T] {
	return &Seq[T]{
		create: func() Iterator[T] {
			iters := make([]Iterator[T], len(seqs))
			for i, s := range seqs {
				iters[i] = s.create()
			}
			return &concatIter[T]{iters: iters}
		},
	}
}

// Pair holds one element from each side of a Zip.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Zip pairs elements of a and b positionally. The output ends as soon as
// either side is exhausted.
func Zip[A, B any](a *Seq[A], b *Seq[B]) *Seq[Pair[A, B]] {
	return &Seq[Pair[A, B]]{
		create: func() Iterator[Pair[A, B]] {
			return &zipIter[A, B]{left: a.create(), right: b.create()}
		},
	}
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) (O, error)
}

func (it *mapIter[I, O]) Next() (O, bool, error) {
	val, ok, err := it.source.Next()
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(I) (*Seq[O], error)
	current Iterator[O]
}

func (it *flatMapIter[I, O]) Next() (O, bool, error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next()
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
		in, ok, err := it.source.Next()
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		inner, err := it.fn(in)
		if err != nil {
			var zero O
			return zero, false, err
		}
		it.current = inner.create()
	}
}

func (it *flatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next() (T, bool, error) {
	for {
		val, ok, err := it.source.Next()
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(T) error
}

func (it *tapIter[T]) Next() (T, bool, error) {
	val, ok, err := it.source.Next()
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next() (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next()
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type skipIter[T any] struct {
	source Iterator[T]
	skip   int
}

func (it *skipIter[T]) Next() (T, bool, error) {
	for it.skip > 0 {
		_, ok, err := it.source.Next()
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		it.skip--
	}
	return it.source.Next()
}

func (it *skipIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next() (T, bool, error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next()
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

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type zipIter[A, B any] struct {
	left  Iterator[A]
	right Iterator[B]
}

func (it *zipIter[A, B]) Next() (Pair[A, B], bool, error) {
	a, ok, err := it.left.Next()
	if err != nil || !ok {
		return Pair[A, B]{}, false, err
	}
	b, ok, err := it.right.Next()
	if err != nil || !ok {
		return Pair[A, B]{}, false, err
	}
	return Pair[A, B]{Left: a, Right: b}, true, nil
}

func (it *zipIter[A, B]) Close() error {
	leftErr := it.left.Close()
	if err := it.right.Close(); err != nil && leftErr == nil {
		return err
	}
	return leftErr
}
