package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/metadata"
)

func TestMetadataCarrier(t *testing.T) {
	md := metadata.Pairs("a", "1", "a", "2")
	c := MetadataCarrier(md)

	require.Equal(t, "1", c.Get("a"))
	require.Equal(t, "", c.Get("b"))

	c.Set("B", "3")
	require.Equal(t, "3", c.Get("b"))
	require.ElementsMatch(t, []string{"a", "b"}, c.Keys())
}

func TestInjectExtractRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = metadata.AppendToOutgoingContext(ctx, "x-user", "alice")
	ctx = InjectOutgoing(ctx)

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Equal(t, []string{"alice"}, md.Get("x-user"))
	require.NotEmpty(t, md.Get("traceparent"))

	in := metadata.NewIncomingContext(context.Background(), md)
	got := trace.SpanContextFromContext(ExtractIncoming(in))
	require.Equal(t, traceID, got.TraceID())
	require.Equal(t, spanID, got.SpanID())
	require.True(t, got.IsRemote())
}

func TestExtractIncomingWithoutMetadata(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, ctx, ExtractIncoming(ctx))
}
