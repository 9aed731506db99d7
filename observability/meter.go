package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for stream observability.
// All recording methods are safe to call on a nil receiver.
type Metrics struct {
	emissionTotal     metric.Int64Counter
	pullLatency       metric.Float64Histogram
	pacingDelay       metric.Float64Histogram
	streamActive      metric.Int64UpDownCounter
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	emissionTotal, err := meter.Int64Counter("stream.emissions",
		metric.WithDescription("Total number of values emitted by pacers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.emissions counter: %w", err)
	}

	pullLatency, err := meter.Float64Histogram("stream.pull_latency",
		metric.WithDescription("Consumer-observed latency between pulls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.pull_latency histogram: %w", err)
	}

	pacingDelay, err := meter.Float64Histogram("stream.pacing_delay",
		metric.WithDescription("Delay chosen by the cadence policy in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.pacing_delay histogram: %w", err)
	}

	streamActive, err := meter.Int64UpDownCounter("stream.active",
		metric.WithDescription("Number of currently active paced streams"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.active gauge: %w", err)
	}

	operationTotal, err := meter.Int64Counter("operation.total",
		metric.WithDescription("Total number of operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating operation.total counter: %w", err)
	}

	operationDuration, err := meter.Float64Histogram("operation.duration",
		metric.WithDescription("Duration of operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating operation.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		emissionTotal:     emissionTotal,
		pullLatency:       pullLatency,
		pacingDelay:       pacingDelay,
		streamActive:      streamActive,
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
		errorTotal:        errorTotal,
	}, nil
}

// RecordStreamStart increments the active stream count.
func (m *Metrics) RecordStreamStart(ctx context.Context) {
	if m == nil {
		return
	}
	m.streamActive.Add(ctx, 1)
}

// RecordStreamEnd decrements the active stream count.
func (m *Metrics) RecordStreamEnd(ctx context.Context) {
	if m == nil {
		return
	}
	m.streamActive.Add(ctx, -1)
}

// RecordEmission records a single paced emission.
func (m *Metrics) RecordEmission(ctx context.Context, pacerID string) {
	if m == nil {
		return
	}
	m.emissionTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pacer_id", pacerID),
	))
}

// RecordCycle records one cadence control cycle: the latency the consumer
// exhibited and the delay the policy chose in response.
func (m *Metrics) RecordCycle(ctx context.Context, pacerID string, observed, delay time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("pacer_id", pacerID))
	m.pullLatency.Record(ctx, observed.Seconds(), attrs)
	m.pacingDelay.Record(ctx, delay.Seconds(), attrs)
}

// RecordOperation records an operation execution.
func (m *Metrics) RecordOperation(ctx context.Context, service, operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.operationTotal.Add(ctx, 1, attrs)
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
	))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
