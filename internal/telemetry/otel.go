package telemetry

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"github.com/blaisecz/study-tracker/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ServiceName identifies study-tracker spans in the trace backend.
const ServiceName = "study-tracker-api"

// TracingConfigured reports whether spans can be exported to Langfuse.
func TracingConfigured(cfg *config.Config) bool {
	return cfg.LangfuseBaseURL != "" && cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != ""
}

// OTLPEndpoint returns the Langfuse OTLP/HTTP traces endpoint for baseURL.
func OTLPEndpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api/public/otel/v1/traces"
}

// InitTracer installs the global tracer provider exporting to Langfuse.
// Without Langfuse credentials the default no-op provider is kept and the
// returned shutdown does nothing.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !TracingConfigured(cfg) {
		log.Printf("[telemetry] langfuse not configured, spans are not exported")
		return func(context.Context) error { return nil }, nil
	}

	auth := base64.StdEncoding.EncodeToString([]byte(cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey))

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(OTLPEndpoint(cfg.LangfuseBaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + auth,
		}),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
			attribute.String("deployment.timezone", cfg.Timezone),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	log.Printf("[telemetry] exporting spans to %s", cfg.LangfuseBaseURL)

	return tp.Shutdown, nil
}
