package research

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/hilthontt/sovereign/internal/infrastructure/encyclopedia"
	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	noExtractText    = "Data acquired but extraction failed."
	notFoundTemplate = "Target '%s' not found in primary databases."
	frictionTemplate = "System encountered friction analyzing '%s'. Sovereign is maintaining secure posture."
	acquiredTemplate = "INTEL ACQUIRED: %s"

	defaultWriteTimeout = 2 * time.Second
)

type Outcome string

const (
	OutcomeAcquired  Outcome = "acquired"
	OutcomeNoExtract Outcome = "no_extract"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeFriction  Outcome = "friction"
)

type SummaryFetcher interface {
	Summary(ctx context.Context, title string) (*encyclopedia.Summary, error)
}

// Recorder receives lookup and storage outcomes, typically for metrics.
type Recorder interface {
	LookupCompleted(outcome string, elapsed time.Duration)
	StoreFailed()
}

// Finding is the result of one search-and-store pass.
type Finding struct {
	Query   string
	Title   string
	Outcome Outcome
	// Result is the text persisted in the log table.
	Result string
	// Report is the text shown to the caller.
	Report string
	// LookupErr is set for every outcome except OutcomeAcquired and
	// OutcomeNoExtract.
	LookupErr error
	StoreErr  error
}

type Researcher struct {
	fetcher      SummaryFetcher
	records      domain.SearchRecordRepository
	logger       logging.Logger
	recorder     Recorder
	writeTimeout time.Duration
	now          func() time.Time
}

type Option func(*Researcher)

func WithRecorder(recorder Recorder) Option {
	return func(r *Researcher) {
		r.recorder = recorder
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(r *Researcher) {
		r.writeTimeout = timeout
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Researcher) {
		r.now = now
	}
}

func NewResearcher(fetcher SummaryFetcher, records domain.SearchRecordRepository, logger logging.Logger, opts ...Option) *Researcher {
	r := &Researcher{
		fetcher:      fetcher,
		records:      records,
		logger:       logger,
		writeTimeout: defaultWriteTimeout,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Investigate looks the intent up in the encyclopedia and appends the
// outcome to the log table. It never fails: lookup and storage errors are
// reported on the Finding.
func (r *Researcher) Investigate(ctx context.Context, intent domain.Intent) Finding {
	ctx, span := otel.Tracer("sovereign/research").Start(ctx, "research.Investigate")
	defer span.End()

	f := Finding{Query: DeriveQuery(intent)}
	f.Title = PageTitle(f.Query)

	span.SetAttributes(
		attribute.String("research.query", f.Query),
		attribute.String("research.title", f.Title),
	)

	started := r.now()
	summary, err := r.fetcher.Summary(ctx, f.Title)
	r.classify(&f, summary, err)
	if r.recorder != nil {
		r.recorder.LookupCompleted(string(f.Outcome), r.now().Sub(started))
	}

	if f.LookupErr != nil {
		span.RecordError(f.LookupErr)
		r.logger.Warn(logging.Encyclopedia, logging.ExternalService, "encyclopedia lookup degraded", map[logging.ExtraKey]any{
			logging.Intent:       intent.String(),
			logging.Query:        f.Query,
			logging.Title:        f.Title,
			"Outcome":            string(f.Outcome),
			logging.ErrorMessage: f.LookupErr.Error(),
		})
	}
	span.SetAttributes(attribute.String("research.outcome", string(f.Outcome)))

	f.StoreErr = r.store(ctx, intent, f.Result)
	if f.StoreErr != nil {
		span.SetStatus(codes.Error, "store failed")
	}

	return f
}

func (r *Researcher) classify(f *Finding, summary *encyclopedia.Summary, err error) {
	var statusErr *encyclopedia.StatusError

	switch {
	case err == nil && summary != nil && summary.Extract != nil:
		f.Outcome = OutcomeAcquired
		f.Result = *summary.Extract
	case err == nil:
		f.Outcome = OutcomeNoExtract
		f.Result = noExtractText
	case errors.As(err, &statusErr):
		f.Outcome = OutcomeNotFound
		f.Result = fmt.Sprintf(notFoundTemplate, f.Query)
		f.LookupErr = err
	default:
		f.Outcome = OutcomeFriction
		f.Result = fmt.Sprintf(frictionTemplate, f.Query)
		f.LookupErr = err
	}

	if f.Outcome == OutcomeFriction {
		f.Report = f.Result
		return
	}
	f.Report = fmt.Sprintf(acquiredTemplate, f.Result)
}

// store appends the outcome even when the caller has gone away.
func (r *Researcher) store(ctx context.Context, intent domain.Intent, result string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
	defer cancel()

	record := domain.NewSearchRecord(intent, result, r.now())
	if err := r.records.Append(ctx, record); err != nil {
		if r.recorder != nil {
			r.recorder.StoreFailed()
		}
		r.logger.Error(logging.Sqlite, logging.Insert, "failed to append search record", map[logging.ExtraKey]any{
			logging.Intent:       intent.String(),
			logging.ErrorMessage: err.Error(),
		})
		return err
	}

	return nil
}
