// Package telemetry configures OpenTelemetry tracing.
//
// The ViaCEP client and the HTTP API always create spans through the global
// tracer provider. Without Init those spans go nowhere; with an OTLP
// endpoint they are batched and exported over gRPC.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/muurk/consultacep/internal/logging"
	"github.com/muurk/consultacep/internal/version"
)

// ServiceName identifies this program in exported traces
const ServiceName = "consultacep"

// ShutdownFunc flushes and stops the exporter
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs a tracer provider exporting to endpoint (host:port of an
// OTLP gRPC collector). An empty endpoint leaves tracing disabled and
// returns a no-op shutdown.
func Init(ctx context.Context, endpoint string, insecure bool) (ShutdownFunc, error) {
	// Propagate trace context on outgoing ViaCEP requests either way
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if endpoint == "" {
		return noopShutdown, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", version.Version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logging.Info("Tracing enabled", zap.String("endpoint", endpoint))

	return tp.Shutdown, nil
}
