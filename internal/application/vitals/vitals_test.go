package vitals

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
	"github.com/hilthontt/sovereign/internal/infrastructure/sysstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSampler struct {
	usage sysstat.Usage
	err   error
}

func (s stubSampler) Sample(context.Context) (sysstat.Usage, error) {
	return s.usage, s.err
}

var healthPattern = regexp.MustCompile(`^\d+% Optimal`)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		usage sysstat.Usage
		want  int
	}{
		{"idle host", sysstat.Usage{}, 100},
		{"cpu bound", sysstat.Usage{CPUPercent: 72.4, MemoryPercent: 30}, 28},
		{"memory bound", sysstat.Usage{CPUPercent: 10, MemoryPercent: 61.5}, 39},
		{"saturated", sysstat.Usage{CPUPercent: 100, MemoryPercent: 100}, 0},
		{"out of range", sysstat.Usage{CPUPercent: 140}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.usage))
		})
	}
}

func TestSystemHealth(t *testing.T) {
	ctx := context.Background()

	r := NewReporter(stubSampler{usage: sysstat.Usage{CPUPercent: 12.6, MemoryPercent: 40.2}}, logging.NewNop())
	got := r.SystemHealth(ctx)
	assert.Equal(t, "60% Optimal (live host telemetry)", got)
	assert.Regexp(t, healthPattern, got)

	r = NewReporter(stubSampler{err: errors.New("no procfs")}, logging.NewNop())
	assert.Equal(t, FallbackHealth, r.SystemHealth(ctx))

	r = NewReporter(nil, logging.NewNop())
	assert.Equal(t, FallbackHealth, r.SystemHealth(ctx))
}

func TestGovernor(t *testing.T) {
	g := NewGovernor(stubSampler{err: errors.New("no procfs")}, logging.NewNop())
	g.StartDefenseLayer(context.Background())

	require.NoError(t, g.OptimizeResources(context.Background()))
	require.NoError(t, g.OptimizeResources(context.Background()))
	assert.Equal(t, int64(2), g.Passes())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.OptimizeResources(ctx), context.Canceled)
	assert.Equal(t, int64(2), g.Passes())
}
