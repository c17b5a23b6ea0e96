package vitals

import (
	"context"
	"sync/atomic"

	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
)

// Governor owns the resource optimisation pass and the startup defense
// layer report. Optimisation has no effect beyond being recorded.
type Governor struct {
	sampler Sampler
	logger  logging.Logger
	passes  atomic.Int64
}

func NewGovernor(sampler Sampler, logger logging.Logger) *Governor {
	return &Governor{
		sampler: sampler,
		logger:  logger,
	}
}

func (g *Governor) OptimizeResources(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n := g.passes.Add(1)
	g.logger.Info(logging.Host, logging.Optimization, "governor optimizing resources... done", map[logging.ExtraKey]any{
		"Pass": n,
	})
	return nil
}

// Passes returns how many optimisation passes have completed.
func (g *Governor) Passes() int64 {
	return g.passes.Load()
}

// StartDefenseLayer logs the host utilisation observed at startup.
func (g *Governor) StartDefenseLayer(ctx context.Context) {
	if g.sampler == nil {
		g.logger.Info(logging.Host, logging.Startup, "guardian defense layer active", nil)
		return
	}

	usage, err := g.sampler.Sample(ctx)
	if err != nil {
		g.logger.Info(logging.Host, logging.Startup, "guardian defense layer active", nil)
		return
	}

	g.logger.Info(logging.Host, logging.Startup, "guardian defense layer active", map[logging.ExtraKey]any{
		"CpuPercent":    usage.CPUPercent,
		"MemoryPercent": usage.MemoryPercent,
	})
}
