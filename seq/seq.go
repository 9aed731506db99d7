package seq

// Seq represents a lazy, possibly infinite synchronous sequence.
// No work happens until values are pulled via Collect, ForEach, Reduce,
// First, or raw iteration.
type Seq[T any] struct {
	create func() Iterator[T]
}

// --- Constructors ---

// From creates a sequence over an existing Iterator.
// The resulting sequence is single-use: the iterator's cursor is not reset
// between materializations.
func From[T any](iter Iterator[T]) *Seq[T] {
	return &Seq[T]{
		create: func() Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a sequence over a slice of values.
// The sequence is rebuildable: each materialization starts from the first
// element again.
func FromSlice[T any](items []T) *Seq[T] {
	return &Seq[T]{
		create: func() Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a sequence from a factory that produces an Iterator.
// The factory is invoked once per materialization.
func FromFunc[T any](fn func() Iterator[T]) *Seq[T] {
	return &Seq[T]{create: fn}
}

// Range creates a rebuildable sequence of the integers from start to end,
// inclusive.
func Range(start, end int) *Seq[int] {
	return &Seq[int]{
		create: func() Iterator[int] {
			return &rangeIter{next: start, end: end}
		},
	}
}

// Iter returns a raw Iterator over this sequence. The caller must Close() it.
func (s *Seq[T]) Iter() Iterator[T] {
	return s.create()
}

// --- Terminals ---

// Collect pulls all values and returns them as a slice.
func Collect[T any](s *Seq[T]) ([]T, error) {
	iter := s.create()
	defer iter.Close()
	var out []T
	for {
		val, ok, err := iter.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}

// ForEach pulls all values and calls fn for each, in order.
// A non-nil error from fn aborts iteration and is returned unchanged.
func ForEach[T any](s *Seq[T], fn func(T) error) error {
	iter := s.create()
	defer iter.Close()
	for {
		val, ok, err := iter.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(val); err != nil {
			return err
		}
	}
}

// Reduce folds all values into a single accumulator, in order.
func Reduce[T, A any](s *Seq[T], init A, fn func(A, T) A) (A, error) {
	acc := init
	err := ForEach(s, func(val T) error {
		acc = fn(acc, val)
		return nil
	})
	return acc, err
}

// First pulls exactly one value. Returns ok == false if the sequence is
// empty. Equivalent to consuming Take(s, 1).
func First[T any](s *Seq[T]) (T, bool, error) {
	iter := s.create()
	defer iter.Close()
	return iter.Next()
}
