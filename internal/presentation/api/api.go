package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hilthontt/sovereign/internal/infrastructure/configs"
	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
	"github.com/hilthontt/sovereign/internal/infrastructure/ratelimiter"
	executeHandler "github.com/hilthontt/sovereign/internal/presentation/handler/execute"
	healthHandler "github.com/hilthontt/sovereign/internal/presentation/handler/health"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 5 * time.Second

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	RequestCompleted(method, route string, status int, elapsed time.Duration)
}

type Application struct {
	config         configs.Config
	executeHandler *executeHandler.Handler
	healthHandler  *healthHandler.Handler
	metricsHandler http.Handler
	logger         logging.Logger
	ratelimiter    ratelimiter.Limiter
	observer       RequestObserver
}

func NewApplication(
	config configs.Config,
	executeHandler *executeHandler.Handler,
	healthHandler *healthHandler.Handler,
	metricsHandler http.Handler,
	logger logging.Logger,
	ratelimiter ratelimiter.Limiter,
	observer RequestObserver,
) *Application {
	return &Application{
		config:         config,
		executeHandler: executeHandler,
		healthHandler:  healthHandler,
		metricsHandler: metricsHandler,
		logger:         logger,
		ratelimiter:    ratelimiter,
		observer:       observer,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.loggerMiddleware)
	r.Use(app.prometheusMiddleware)
	r.Use(middleware.Recoverer)
	if app.config.HTTP.RequestTimeout > 0 {
		r.Use(middleware.Timeout(app.config.HTTP.RequestTimeout))
	}

	if app.ratelimiter != nil {
		r.Use(app.rateLimiterMiddleware)
	}
	r.Use(app.enableCors)

	r.Post("/execute", app.executeHandler.ExecuteHandler)

	r.Get("/health", app.healthHandler.GetHealth)
	r.Get("/healthz", app.healthHandler.GetHealth)
	r.Get("/ready", app.healthHandler.GetHealth)
	r.Get("/live", app.healthHandler.GetHealth)

	if app.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", app.metricsHandler)
	}

	return otelhttp.NewHandler(r, "sovereign-http")
}

// Run serves mux until ctx is cancelled, then shuts the server down and
// waits for in-flight requests.
func (app *Application) Run(ctx context.Context, mux http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", app.config.HTTP.Host, app.config.HTTP.Port),
		Handler:      mux,
		WriteTimeout: app.config.HTTP.WriteTimeout,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		IdleTimeout:  app.config.HTTP.IdleTimeout,
	}

	shutdown := make(chan error, 1)

	go func() {
		<-ctx.Done()

		app.healthHandler.SetHealthy(false)
		app.logger.Info(logging.General, logging.Shutdown, "shutdown requested", map[logging.ExtraKey]any{
			"Addr": srv.Addr,
		})

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		shutdown <- srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(logging.General, logging.Startup, "server has started", map[logging.ExtraKey]any{
		"Addr": srv.Addr,
	})

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdown; err != nil {
		return err
	}

	app.logger.Info(logging.General, logging.Shutdown, "server has stopped", map[logging.ExtraKey]any{
		"Addr": srv.Addr,
	})

	return nil
}
