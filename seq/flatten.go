package seq

import (
	"context"
	"errors"
)

// Kind identifies what a Node wraps.
type Kind int

const (
	// KindValue is a plain value.
	KindValue Kind = iota
	// KindSync is a nested synchronous sequence.
	KindSync
	// KindAsync is a nested asynchronous sequence.
	KindAsync
)

// Node is the tagged element type consumed by Flatten. Tagging at the
// point nested values are produced lets Flatten dispatch by matching the
// tag instead of probing a value's shape at runtime.
type Node struct {
	kind Kind
	val  any
	sync *Seq[Node]
	asyn *Async[Node]
}

// Value wraps a plain value.
func Value(v any) Node {
	return Node{kind: KindValue, val: v}
}

// Nested wraps a synchronous sequence as a nested element.
func Nested(s *Seq[Node]) Node {
	return Node{kind: KindSync, sync: s}
}

// AsyncNested wraps an asynchronous sequence as a nested element.
func AsyncNested(s *Async[Node]) Node {
	return Node{kind: KindAsync, asyn: s}
}

// NodesOf builds a rebuildable sequence of plain-value nodes.
func NodesOf(vals ...any) *Seq[Node] {
	nodes := make([]Node, len(vals))
	for i, v := range vals {
		nodes[i] = Value(v)
	}
	return FromSlice(nodes)
}

// Kind returns the node's tag.
func (n Node) Kind() Kind { return n.kind }

// Value returns the wrapped plain value; nil unless Kind is KindValue.
func (n Node) Value() any { return n.val }

// Sync returns the nested sync sequence; nil unless Kind is KindSync.
func (n Node) Sync() *Seq[Node] { return n.sync }

// Async returns the nested async sequence; nil unless Kind is KindAsync.
func (n Node) Async() *Async[Node] { return n.asyn }

// ErrNestingTooDeep is returned when flattening recurses past the nesting
// guard, which happens on self-referential or pathologically deep
// structures. Cyclic nesting is an error, not an infinite loop.
var ErrNestingTooDeep = errors.New("seq: nesting too deep")

// ErrNotValue is returned by Values when a node still wraps a nested
// sequence, i.e. the input was not flattened far enough.
var ErrNotValue = errors.New("seq: node is not a plain value")

// maxNestingDepth bounds the unwrap stack of a single flatten pass.
const maxNestingDepth = 1024

// Flatten recursively unwraps nested sequences up to depth levels. A
// negative depth means unbounded, capped by the nesting guard. Nodes whose
// nesting survives the depth limit are emitted unchanged.
//
// Mixed nesting is handled transparently: an async sequence nested inside
// a sync one is fully drained (blocking, with context.Background()) before
// its elements are emitted.
func Flatten(s *Seq[Node], depth int) *Seq[Node] {
	return &Seq[Node]{
		create: func() Iterator[Node] {
			return &flattenIter{
				stack: []flattenFrame{{iter: s.create(), depth: depth}},
			}
		},
	}
}

// AsyncFlatten is Flatten for async sequences. A sync sequence nested
// inside an async one is re-exposed through the suspendable contract and
// consumed in place.
func AsyncFlatten(s *Async[Node], depth int) *Async[Node] {
	return &Async[Node]{
		create: func(ctx context.Context) AsyncIterator[Node] {
			return &asyncFlattenIter{
				ctx:   ctx,
				stack: []asyncFlattenFrame{{iter: s.create(ctx), depth: depth}},
			}
		},
	}
}

// Values unwraps a fully flattened sequence into plain values. Pulling a
// node that still wraps a nested sequence fails with ErrNotValue.
func Values(s *Seq[Node]) *Seq[any] {
	return Map(s, func(n Node) (any, error) {
		if n.kind != KindValue {
			return nil, ErrNotValue
		}
		return n.val, nil
	})
}

// AsyncValues is Values for async sequences.
func AsyncValues(s *Async[Node]) *Async[any] {
	return AsyncMap(s, func(_ context.Context, n Node) (any, error) {
		if n.kind != KindValue {
			return nil, ErrNotValue
		}
		return n.val, nil
	})
}

// --- Iterator implementations ---

type flattenFrame struct {
	iter  Iterator[Node]
	depth int
}

type flattenIter struct {
	stack []flattenFrame
}

func (it *flattenIter) Next() (Node, bool, error) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n, ok, err := top.iter.Next()
		if err != nil {
			return Node{}, false, err
		}
		if !ok {
			_ = top.iter.Close()
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		if n.kind == KindValue || top.depth == 0 {
			return n, true, nil
		}
		if len(it.stack) >= maxNestingDepth {
			return Node{}, false, ErrNestingTooDeep
		}
		var inner Iterator[Node]
		switch n.kind {
		case KindSync:
			inner = n.sync.create()
		case KindAsync:
			drained, err := ToSync(context.Background(), n.asyn)
			if err != nil {
				return Node{}, false, err
			}
			inner = drained.create()
		}
		it.stack = append(it.stack, flattenFrame{iter: inner, depth: childDepth(top.depth)})
	}
	return Node{}, false, nil
}

func (it *flattenIter) Close() error {
	var firstErr error
	for _, frame := range it.stack {
		if err := frame.iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	it.stack = nil
	return firstErr
}

type asyncFlattenFrame struct {
	iter  AsyncIterator[Node]
	depth int
}

type asyncFlattenIter struct {
	ctx   context.Context
	stack []asyncFlattenFrame
}

func (it *asyncFlattenIter) Next(ctx context.Context) (Node, bool, error) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n, ok, err := top.iter.Next(ctx)
		if err != nil {
			return Node{}, false, err
		}
		if !ok {
			_ = top.iter.Close()
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		if n.kind == KindValue || top.depth == 0 {
			return n, true, nil
		}
		if len(it.stack) >= maxNestingDepth {
			return Node{}, false, ErrNestingTooDeep
		}
		var inner AsyncIterator[Node]
		switch n.kind {
		case KindSync:
			inner = ToAsync(n.sync).create(it.ctx)
		case KindAsync:
			inner = n.asyn.create(it.ctx)
		}
		it.stack = append(it.stack, asyncFlattenFrame{iter: inner, depth: childDepth(top.depth)})
	}
	return Node{}, false, nil
}

func (it *asyncFlattenIter) Close() error {
	var firstErr error
	for _, frame := range it.stack {
		if err := frame.iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	it.stack = nil
	return firstErr
}

// childDepth is the unwrap budget for elements one level down. Negative
// budgets stay negative: unbounded flattening is only stopped by the
// nesting guard.
func childDepth(d int) int {
	if d < 0 {
		return -1
	}
	return d - 1
}
