package tracing

import (
	"context"
	"errors"
	"fmt"

	"github.com/immvis/immvis-go/internal/app/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "immvis"

var serviceName = defaultTracerName

// ShutdownFunc flushes buffered spans and stops the exporter.
type ShutdownFunc func(context.Context) error

// Initialize installs a global tracer provider exporting to jaeger agent.
func Initialize(cfg *config.Tracing) (ShutdownFunc, error) {
	if err := validateTracingConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid tracing config: %w", err)
	}

	tp, err := newTracerProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't create trace provider: %w", err)
	}
	serviceName = cfg.ServiceName

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(serviceName).Start(ctx, name)
}

func validateTracingConfig(cfg *config.Tracing) error {
	if cfg == nil {
		return errors.New("tracing section is empty")
	}
	if cfg.ServiceName == "" {
		return errors.New("'service_name' is required")
	}
	if cfg.Jaeger.AgentHost == "" {
		return errors.New("'jaeger.agent_host' is required")
	}
	if cfg.Jaeger.AgentPort == "" {
		return errors.New("'jaeger.agent_port' is required")
	}
	if cfg.Sampler.Param < 0 || cfg.Sampler.Param > 1 {
		return fmt.Errorf("'sampler.param' must be in [0, 1], got %v", cfg.Sampler.Param)
	}
	return nil
}

func newTracerProvider(cfg *config.Tracing) (*tracesdk.TracerProvider, error) {
	exp, err := jaeger.New(
		jaeger.WithAgentEndpoint(
			jaeger.WithAgentHost(cfg.Jaeger.AgentHost),
			jaeger.WithAgentPort(cfg.Jaeger.AgentPort),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithSampler(tracesdk.TraceIDRatioBased(cfg.Sampler.Param)),
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		)),
	)

	return tp, nil
}
