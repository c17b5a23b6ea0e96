package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hilthontt/sovereign/internal/application/research"
	"github.com/hilthontt/sovereign/internal/application/strategy"
	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/hilthontt/sovereign/internal/infrastructure/dispatcher"
	"github.com/hilthontt/sovereign/internal/infrastructure/events"
	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
)

const reportSeparator = "\n\n"

type Researcher interface {
	Investigate(ctx context.Context, intent domain.Intent) research.Finding
}

type HealthReporter interface {
	SystemHealth(ctx context.Context) string
}

type Optimizer interface {
	OptimizeResources(ctx context.Context) error
}

type Scheduler interface {
	Submit(name string, fn dispatcher.TaskFunc) (string, bool)
}

type Recorder interface {
	IntentExecuted(research, security bool)
	PublishFailed()
}

// Executor turns an intent into a Report. It has no failure path: every
// collaborator degrades to text.
type Executor struct {
	researcher   Researcher
	health       HealthReporter
	optimizer    Optimizer
	scheduler    Scheduler
	publisher    events.IntentPublisher
	recorder     Recorder
	logger       logging.Logger
	worldContext string
	now          func() time.Time
}

type Option func(*Executor)

// WithPublisher announces every executed intent in the background.
func WithPublisher(publisher events.IntentPublisher) Option {
	return func(e *Executor) {
		e.publisher = publisher
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(e *Executor) {
		e.recorder = recorder
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		e.now = now
	}
}

func NewExecutor(
	researcher Researcher,
	health HealthReporter,
	optimizer Optimizer,
	scheduler Scheduler,
	logger logging.Logger,
	worldContext string,
	opts ...Option,
) *Executor {
	e := &Executor{
		researcher:   researcher,
		health:       health,
		optimizer:    optimizer,
		scheduler:    scheduler,
		logger:       logger,
		worldContext: worldContext,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Executor) Execute(ctx context.Context, raw string) domain.Report {
	intent := domain.NewIntent(raw)

	report := domain.Report{
		ExecutionID:  uuid.NewString(),
		Intent:       intent,
		Status:       domain.StatusActionCommenced,
		WorldContext: e.worldContext,
		Researched:   intent.WantsResearch(),
		Secured:      intent.WantsSecurity(),
	}

	report.IntelligenceReport = strategy.Select(intent)

	if report.Researched {
		finding := e.researcher.Investigate(ctx, intent)
		report.IntelligenceReport = finding.Report + reportSeparator + report.IntelligenceReport
	}

	if report.Secured {
		e.schedule("optimize-resources", e.optimizer.OptimizeResources, report)
	}

	report.SystemHealth = e.health.SystemHealth(ctx)
	report.CompletedAt = e.now().UTC()

	if e.recorder != nil {
		e.recorder.IntentExecuted(report.Researched, report.Secured)
	}

	if e.publisher != nil {
		e.schedule("publish-intent-executed", func(ctx context.Context) error {
			if err := e.publisher.PublishIntentExecuted(ctx, report); err != nil {
				if e.recorder != nil {
					e.recorder.PublishFailed()
				}
				return err
			}
			return nil
		}, report)
	}

	e.logger.Info(logging.General, logging.Strategy, "intent executed", map[logging.ExtraKey]any{
		logging.ExecutionID: report.ExecutionID,
		logging.Intent:      intent.String(),
		"Researched":        report.Researched,
		"Secured":           report.Secured,
	})

	return report
}

func (e *Executor) schedule(name string, fn dispatcher.TaskFunc, report domain.Report) {
	if _, ok := e.scheduler.Submit(name, fn); !ok {
		e.logger.Warn(logging.Dispatcher, logging.Scheduling, "background task not scheduled", map[logging.ExtraKey]any{
			logging.ExecutionID: report.ExecutionID,
			"TaskName":          name,
		})
	}
}
