package app

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/product-dashboard/internal/config"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

// initTracing installs the global tracer provider. Spans are exported over
// OTLP/HTTP only when a collector endpoint is configured.
func initTracing(lc fx.Lifecycle, cfg *config.Config) error {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.Tracing.ServiceName),
		)),
	}
	if cfg.Tracing.Endpoint != "" {
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.Tracing.Endpoint),
				otlptracehttp.WithInsecure(),
			),
		)
		if err != nil {
			return fmt.Errorf("creating OTLP trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tracerProvider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := tracerProvider.Shutdown(ctx); err != nil {
				logger.MustNamed("tracing").Errorw("failed to shutdown tracing", "error", err)
			}
			return nil
		},
	})
	return nil
}
