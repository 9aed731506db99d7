package sse

import (
	"context"
	"encoding/json"

	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/seq"
)

// Stream drains a suspendable sequence and broadcasts every encoded value
// to clients matching the pattern. It blocks until the sequence is
// exhausted, the context is canceled, or encoding fails, and returns the
// first error it hits.
func Stream[T any](ctx context.Context, b Broadcaster, pattern string, s *seq.Async[T], encode func(T) ([]byte, error)) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanSSEBroadcast)
	defer span.End()

	err := seq.AsyncForEach(ctx, s, func(_ context.Context, v T) error {
		data, err := encode(v)
		if err != nil {
			return err
		}
		b.BroadcastToPattern(pattern, data)
		return nil
	})
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return err
}

// StreamJSON drains a sequence and broadcasts each value JSON-encoded.
func StreamJSON[T any](ctx context.Context, b Broadcaster, pattern string, s *seq.Async[T]) error {
	return Stream(ctx, b, pattern, s, func(v T) ([]byte, error) {
		return json.Marshal(v)
	})
}
