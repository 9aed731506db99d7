package seq

import (
	"context"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	got, err := Collect(s)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	s := FromSlice([]int{})
	got, err := Collect(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestRange_Inclusive(t *testing.T) {
	got, err := Collect(Range(1, 5))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3, 4, 5}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFrom_SingleUse(t *testing.T) {
	iter := &sliceIter[string]{items: []string{"a", "b"}}
	s := From[string](iter)
	got, err := Collect(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
	// The wrapped iterator is exhausted; a second pass observes nothing.
	again, err := Collect(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Errorf("expected exhausted source, got %v", again)
	}
}

// Materializing a rebuildable source twice yields identical output: no
// hidden state leaks across runs.
func TestDeterminism_RebuildableSource(t *testing.T) {
	s := Filter(
		mustMap(Range(1, 10), func(n int) int { return n * 2 }),
		func(n int) bool { return n > 10 },
	)
	want := []int{12, 14, 16, 18, 20}
	for run := 0; run < 2; run++ {
		got, err := Collect(s)
		if err != nil {
			t.Fatal(err)
		}
		if !intSliceEqual(got, want) {
			t.Errorf("run %d: got %v, want %v", run, got, want)
		}
	}
}

func TestForEach_Order(t *testing.T) {
	var got []int
	err := ForEach(FromSlice([]int{3, 1, 2}), func(n int) error {
		got = append(got, n)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3, 1, 2}) {
		t.Errorf("got %v, want [3 1 2]", got)
	}
}

func TestReduce(t *testing.T) {
	sum, err := Reduce(Range(1, 4), 0, func(acc, n int) int { return acc + n })
	if err != nil {
		t.Fatal(err)
	}
	if sum != 10 {
		t.Errorf("got %d, want 10", sum)
	}
}

func TestFirst(t *testing.T) {
	val, ok, err := First(FromSlice([]string{"x", "y"}))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || val != "x" {
		t.Errorf("got (%q, %v), want (x, true)", val, ok)
	}
}

func TestFirst_Empty(t *testing.T) {
	_, ok, err := First(FromSlice([]int{}))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected ok == false for empty sequence")
	}
}

func TestFirst_DoesNotDrain(t *testing.T) {
	src := newCountingSource(10)
	if _, _, err := First(src.seq()); err != nil {
		t.Fatal(err)
	}
	if src.pulls != 1 {
		t.Errorf("First pulled %d times, want 1", src.pulls)
	}
}

// --- helpers shared across the package tests ---

func mustMap[T any](s *Seq[T], fn func(T) T) *Seq[T] {
	return Map(s, func(v T) (T, error) { return fn(v), nil })
}

// countingSource counts upstream pulls, for laziness assertions.
type countingSource struct {
	limit int
	pulls int
}

func newCountingSource(limit int) *countingSource {
	return &countingSource{limit: limit}
}

func (c *countingSource) seq() *Seq[int] {
	return FromFunc(func() Iterator[int] {
		return &countingIter{src: c}
	})
}

func (c *countingSource) async() *Async[int] {
	return NewAsync(func(_ context.Context) AsyncIterator[int] {
		return &asyncCountingIter{src: c}
	})
}

type countingIter struct {
	src  *countingSource
	next int
}

func (it *countingIter) Next() (int, bool, error) {
	if it.next >= it.src.limit {
		return 0, false, nil
	}
	it.src.pulls++
	val := it.next
	it.next++
	return val, true, nil
}

func (it *countingIter) Close() error { return nil }

type asyncCountingIter struct {
	src  *countingSource
	next int
}

func (it *asyncCountingIter) Next(ctx context.Context) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if it.next >= it.src.limit {
		return 0, false, nil
	}
	it.src.pulls++
	val := it.next
	it.next++
	return val, true, nil
}

func (it *asyncCountingIter) Close() error { return nil }

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func anySliceEqual(a []any, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
