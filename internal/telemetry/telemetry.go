package telemetry

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"
)

// Logger is the process-wide structured logger, set by InitTelemetry.
var Logger *zap.Logger

var tracerProvider *sdktrace.TracerProvider

// InitTelemetry sets up the zap logger and, when an OTLP endpoint is
// configured, the OpenTelemetry tracer provider.
func InitTelemetry(serviceName string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Logger = logger

	// The otlptracehttp exporter reads OTEL_EXPORTER_OTLP_ENDPOINT itself;
	// tracing stays off entirely when it is not set.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil
	}

	exporter, err := otlptracehttp.New(context.Background())
	if err != nil {
		return err
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(tracerProvider)

	return nil
}

// Shutdown flushes the logger and trace exporter.
func Shutdown(ctx context.Context) {
	if Logger != nil {
		_ = Logger.Sync()
	}
	if tracerProvider != nil {
		_ = tracerProvider.Shutdown(ctx)
	}
}

// TracingMiddleware opens a span per request and records the outcome.
func TracingMiddleware() gin.HandlerFunc {
	tracer := otel.Tracer("storefront-gateway")
	return func(c *gin.Context) {
		name := c.FullPath()
		if name == "" {
			name = c.Request.URL.Path
		}

		ctx, span := tracer.Start(c.Request.Context(), name)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
	}
}
