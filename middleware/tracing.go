package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/bookstore-service/config"
)

const tracerName = "bookstore-service"

// InitTracing sets up the global OpenTelemetry tracer provider with an
// OTLP/HTTP exporter. The returned provider must be shut down on exit.
func InitTracing(cfg *config.Config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpoint(cfg.Tracing.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.Service.Name),
		semconv.ServiceVersion(cfg.Service.Version),
		semconv.DeploymentEnvironment(cfg.Service.Env),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Tracing.SampleRate))),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// TracingMiddleware returns the otelgin middleware for incoming requests.
func TracingMiddleware() gin.HandlerFunc {
	return otelgin.Middleware(tracerName)
}

// StartSpan starts a span on the service tracer. Used by the web and
// logic layers so span creation stays in one place.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, opts...)
}
