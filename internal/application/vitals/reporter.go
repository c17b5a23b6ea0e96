package vitals

import (
	"context"
	"fmt"
	"math"

	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
	"github.com/hilthontt/sovereign/internal/infrastructure/sysstat"
)

const (
	// FallbackHealth is reported when the host cannot be sampled.
	FallbackHealth = "100% Optimal"

	healthSuffix = "Optimal (live host telemetry)"
)

type Sampler interface {
	Sample(ctx context.Context) (sysstat.Usage, error)
}

type Reporter struct {
	sampler Sampler
	logger  logging.Logger
}

func NewReporter(sampler Sampler, logger logging.Logger) *Reporter {
	return &Reporter{
		sampler: sampler,
		logger:  logger,
	}
}

// Score is 100 minus the busier of CPU and memory, rounded and clamped to
// [0, 100].
func Score(u sysstat.Usage) int {
	score := math.Round(100 - math.Max(u.CPUPercent, u.MemoryPercent))
	return int(math.Max(0, math.Min(100, score)))
}

func Format(score int) string {
	return fmt.Sprintf("%d%% %s", score, healthSuffix)
}

func (r *Reporter) SystemHealth(ctx context.Context) string {
	if r.sampler == nil {
		return FallbackHealth
	}

	usage, err := r.sampler.Sample(ctx)
	if err != nil {
		r.logger.Warn(logging.Host, logging.Sampling, "host sampling failed", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
		return FallbackHealth
	}

	return Format(Score(usage))
}
