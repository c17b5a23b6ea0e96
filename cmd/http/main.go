package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hilthontt/sovereign/internal/application/command"
	"github.com/hilthontt/sovereign/internal/application/research"
	"github.com/hilthontt/sovereign/internal/application/vitals"
	"github.com/hilthontt/sovereign/internal/infrastructure/configs"
	"github.com/hilthontt/sovereign/internal/infrastructure/dispatcher"
	"github.com/hilthontt/sovereign/internal/infrastructure/encyclopedia"
	"github.com/hilthontt/sovereign/internal/infrastructure/env"
	"github.com/hilthontt/sovereign/internal/infrastructure/events"
	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
	"github.com/hilthontt/sovereign/internal/infrastructure/messaging"
	"github.com/hilthontt/sovereign/internal/infrastructure/metrics"
	"github.com/hilthontt/sovereign/internal/infrastructure/ratelimiter"
	"github.com/hilthontt/sovereign/internal/infrastructure/sysstat"
	"github.com/hilthontt/sovereign/internal/infrastructure/tracing"
	"github.com/hilthontt/sovereign/internal/persistence/db"
	"github.com/hilthontt/sovereign/internal/persistence/repository"
	"github.com/hilthontt/sovereign/internal/presentation/api"
	"github.com/hilthontt/sovereign/internal/presentation/handler/execute"
	"github.com/hilthontt/sovereign/internal/presentation/handler/health"
	"golang.org/x/sync/errgroup"
)

const appName = "sovereign"

func main() {
	env.Load(".env")

	configPath, err := configs.DetermineConfigPath(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	loggerCfg := logging.NewDefaultConfig(appName)
	loggerCfg.FilePath = cfg.Logger.FilePath
	loggerCfg.Encoding = cfg.Logger.Encoding
	loggerCfg.Level = cfg.Logger.Level
	loggerCfg.Logger = cfg.Logger.Logger

	logger, err := logging.NewLogger(loggerCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal(logging.General, logging.Startup, "sovereign stopped with error", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}
}

func run(ctx context.Context, cfg *configs.Config, logger logging.Logger) error {
	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: appName,
		Environment: cfg.Tracing.Environment,
		Endpoint:    cfg.Tracing.Endpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(logging.General, logging.Shutdown, "tracer shutdown failed", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		}
	}()

	database, err := db.OpenSqlite(ctx, &db.SqliteConfig{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info(logging.Sqlite, logging.Migration, "search log ready", map[logging.ExtraKey]any{
		"Path": cfg.Database.Path,
	})

	m := metrics.New()

	var sampler vitals.Sampler
	procSampler, err := sysstat.NewProcSampler(cfg.Vitals.ProcPath, cfg.Vitals.SampleInterval)
	if err != nil {
		logger.Warn(logging.Host, logging.Sampling, "host telemetry unavailable, reporting fallback health", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	} else {
		sampler = procSampler
	}

	reporter := vitals.NewReporter(sampler, logger)
	governor := vitals.NewGovernor(sampler, logger)

	governor.StartDefenseLayer(ctx)
	if err := governor.OptimizeResources(ctx); err != nil {
		return err
	}
	logger.Info(logging.General, logging.Startup, "sovereign ascension complete", map[logging.ExtraKey]any{
		logging.AppName: appName,
	})

	tasks := dispatcher.New(cfg.Dispatcher.QueueSize, cfg.Dispatcher.TaskTimeout, logger, m)

	client := encyclopedia.NewClient(
		encyclopedia.WithBaseURL(cfg.Encyclopedia.BaseURL),
		encyclopedia.WithUserAgent(cfg.Encyclopedia.UserAgent),
		encyclopedia.WithTimeout(cfg.Encyclopedia.Timeout),
	)
	researcher := research.NewResearcher(client, repository.NewSearchRecordRepository(database), logger,
		research.WithRecorder(m),
		research.WithWriteTimeout(cfg.Database.WriteTimeout),
	)

	opts := []command.Option{command.WithRecorder(m)}
	if cfg.Messaging.URI != "" {
		rabbit, err := messaging.NewRabbitMQ(cfg.Messaging.URI, cfg.Messaging.Exchange)
		if err != nil {
			return err
		}
		defer rabbit.Close()

		opts = append(opts, command.WithPublisher(events.NewIntentPublisher(rabbit)))
		logger.Info(logging.RabbitMQ, logging.Startup, "publishing executed intents", map[logging.ExtraKey]any{
			"Exchange": cfg.Messaging.Exchange,
		})
	}

	executor := command.NewExecutor(researcher, reporter, governor, tasks, logger, cfg.Mission.WorldContext, opts...)

	var limiter ratelimiter.Limiter
	if cfg.RateLimiter.Enabled {
		fixed := ratelimiter.NewFixedWindowRateLimiter(cfg.RateLimiter.RequestsPerTimeFrame, cfg.RateLimiter.TimeFrame)
		defer fixed.Close()
		limiter = fixed
	}

	app := api.NewApplication(
		*cfg,
		execute.NewHandler(executor),
		health.NewHandler(reporter),
		m.Handler(),
		logger,
		limiter,
		m,
	)
	mux := app.Mount()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return tasks.Run(gctx)
	})
	g.Go(func() error {
		return app.Run(gctx, mux)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
