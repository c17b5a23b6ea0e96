package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), Config{ServiceName: "sovereign-test"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")

	_, span := GetTracer("test").Start(context.Background(), "noop")
	span.End()
}

func TestInitTracerEnabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), Config{
		Enabled:     true,
		ServiceName: "sovereign-test",
		Environment: "test",
		Endpoint:    "http://127.0.0.1:1/v1/traces",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Nothing was exported; shutdown with a cancelled context must not hang.
	_ = shutdown(ctx)
}
