package seq

import "context"

// Iterator provides pull-based sequential access to a synchronous stream
// of values. Next never suspends: the next value is either available
// immediately or the stream is exhausted.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next() (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// AsyncIterator provides pull-based sequential access to a stream whose
// values may not be ready yet. Next blocks the calling goroutine until the
// next value is available, the stream ends, or ctx is done.
type AsyncIterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type rangeIter struct {
	next int
	end  int
}

func (it *rangeIter) Next() (int, bool, error) {
	if it.next > it.end {
		return 0, false, nil
	}
	val := it.next
	it.next++
	return val, true, nil
}

func (it *rangeIter) Close() error { return nil }

// result carries a value or error through a channel.
type result[T any] struct {
	val T
	ok  bool
	err error
}

// channelIter reads results from a channel. Used by Buffer.
type channelIter[T any] struct {
	ch     <-chan result[T]
	closer func() error
}

func (it *channelIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case r, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return r.val, r.ok, r.err
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *channelIter[T]) Close() error {
	if it.closer != nil {
		return it.closer()
	}
	return nil
}

// rawChannelIter reads plain values from a channel until it is closed.
type rawChannelIter[T any] struct {
	ch <-chan T
}

func (it *rawChannelIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case val, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return val, true, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *rawChannelIter[T]) Close() error { return nil }
