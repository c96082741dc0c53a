package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAddsSpanFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLogger(zap.New(core)).With(zap.String("component", "test"))

	l.Info(context.Background(), "no span")

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1},
		SpanID:  trace.SpanID{2},
	})
	l.Warn(trace.ContextWithSpanContext(context.Background(), sc), "with span")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, "test", first["component"])
	require.NotContains(t, first, "trace_id")

	second := entries[1].ContextMap()
	require.Equal(t, sc.TraceID().String(), second["trace_id"])
	require.Equal(t, sc.SpanID().String(), second["span_id"])
}
