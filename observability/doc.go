// Package observability provides OpenTelemetry tracing and metrics integration
// for paced stream services.
//
// Tracing:
//
//	cfg := observability.DefaultTracerConfig("ticker")
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanStreamDrain)
//	defer span.End()
//
// Metrics:
//
//	mcfg := observability.DefaultMeterConfig("ticker")
//	mp, err := observability.InitMeter(ctx, &mcfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("ticker"))
//	metrics.RecordCycle(ctx, pacerID, observed, delay)
//
// Health Checks:
//
//	health := observability.NewServiceHealth("ticker", "1.0.0")
//	health.AddComponent(checker.CheckHealth(ctx))
package observability
