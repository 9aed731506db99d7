package pacer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/cadence"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/seq"
)

// EmitFunc produces the next value of a paced stream. Returning ok=false
// ends the stream; returning an error ends it with that error.
type EmitFunc[T any] func(ctx context.Context) (T, bool, error)

// Option configures a Pacer.
type Option[T any] func(*Pacer[T])

// WithID sets an explicit pacer id instead of a generated one.
func WithID[T any](id string) Option[T] {
	return func(p *Pacer[T]) { p.id = id }
}

// WithLogger sets the logger used by the production loop.
func WithLogger[T any](log *logger.Logger) Option[T] {
	return func(p *Pacer[T]) { p.log = log }
}

// WithMetrics enables metric recording for the production loop.
func WithMetrics[T any](m *observability.Metrics) Option[T] {
	return func(p *Pacer[T]) { p.metrics = m }
}

// WithInitialDelay overrides the delay used before the first emission.
func WithInitialDelay[T any](d time.Duration) Option[T] {
	return func(p *Pacer[T]) { p.initialDelay = d }
}

// delayer is implemented by adjusters that expose their current delay.
type delayer interface {
	Delay() time.Duration
}

// Pacer is an adaptive production loop. Each pull waits the current delay,
// emits one value, and measures the time until the consumer pulls again;
// that latency drives the cadence policy for the following cycle.
type Pacer[T any] struct {
	id           string
	emit         EmitFunc[T]
	adjuster     cadence.Adjuster
	log          *logger.Logger
	metrics      *observability.Metrics
	initialDelay time.Duration
}

// New creates a pacer over the given emit function and cadence policy.
func New[T any](emit EmitFunc[T], adjuster cadence.Adjuster, opts ...Option[T]) *Pacer[T] {
	p := &Pacer[T]{
		id:       uuid.NewString(),
		emit:     emit,
		adjuster: adjuster,
		log:      logger.Get("pacer"),
	}
	if d, ok := adjuster.(delayer); ok {
		p.initialDelay = d.Delay()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the pacer's identifier.
func (p *Pacer[T]) ID() string {
	return p.id
}

// Sequence exposes the production loop as a suspendable sequence. Each
// call starts an independent loop with fresh cadence state observed from
// the shared adjuster.
func (p *Pacer[T]) Sequence() *seq.Async[T] {
	return seq.NewAsync(func(ctx context.Context) seq.AsyncIterator[T] {
		p.metrics.RecordStreamStart(ctx)
		p.log.Debug("pacer loop started", logger.Fields(
			logger.FieldPacerID, p.id,
			logger.FieldDelay, p.initialDelay.Milliseconds(),
		))
		return &pacerIter[T]{p: p, delay: p.initialDelay}
	})
}

type pacerIter[T any] struct {
	p        *Pacer[T]
	delay    time.Duration
	lastEmit time.Time
	done     bool
}

func (it *pacerIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}

	// The gap since the previous emission is the consumer-observed
	// latency; it drives the delay for this cycle.
	if !it.lastEmit.IsZero() {
		observed := time.Since(it.lastEmit)
		it.delay = it.p.adjuster.Adjust(observed)
		it.p.metrics.RecordCycle(ctx, it.p.id, observed, it.delay)
	}

	if it.delay > 0 {
		timer := time.NewTimer(it.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			it.done = true
			return zero, false, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		it.done = true
		return zero, false, err
	}

	val, ok, err := it.p.emit(ctx)
	if err != nil {
		it.done = true
		it.p.log.Error("emit failed", logger.MergeWithError(
			logger.Fields(logger.FieldPacerID, it.p.id), err,
		))
		return zero, false, err
	}
	if !ok {
		it.done = true
		it.p.log.Debug("pacer source exhausted", logger.Fields(
			logger.FieldPacerID, it.p.id,
		))
		return zero, false, nil
	}

	it.lastEmit = time.Now()
	it.p.metrics.RecordEmission(ctx, it.p.id)
	return val, true, nil
}

func (it *pacerIter[T]) Close() error {
	it.p.metrics.RecordStreamEnd(context.Background())
	return nil
}
