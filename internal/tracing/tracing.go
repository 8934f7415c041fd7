// Package tracing configures the OpenTelemetry trace pipeline: an OTLP/HTTP
// exporter plus a batching tracer provider registered globally.
package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Configuration struct {
	Enabled  bool
	Endpoint string
	Insecure bool
}

// Setup builds the tracer provider and returns its shutdown function. When
// tracing is disabled the returned shutdown is a no-op.
func Setup(ctx context.Context, logger *slog.Logger, config Configuration) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	options := []otlptracehttp.Option{}
	if config.Endpoint != "" {
		options = append(options, otlptracehttp.WithEndpoint(config.Endpoint))
	}
	if config.Insecure {
		options = append(options, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("fail to create the otlp trace exporter: %w", err)
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("sloguard"),
		))
	if err != nil {
		return nil, fmt.Errorf("fail to build the otel resource: %w", err)
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	logger.Info(fmt.Sprintf("tracing enabled, exporting to %s", config.Endpoint))
	return provider.Shutdown, nil
}
