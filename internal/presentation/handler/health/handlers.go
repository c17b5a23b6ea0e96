package health

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/hilthontt/sovereign/internal/infrastructure/json"
)

type HealthReporter interface {
	SystemHealth(ctx context.Context) string
}

type Handler struct {
	reporter  HealthReporter
	startTime time.Time
	healthy   atomic.Bool
}

func NewHandler(reporter HealthReporter) *Handler {
	h := &Handler{
		reporter:  reporter,
		startTime: time.Now(),
	}
	h.healthy.Store(true)
	return h
}

// SetHealthy flips the probe result; the server marks itself unhealthy while
// draining.
func (h *Handler) SetHealthy(healthy bool) {
	h.healthy.Store(healthy)
}

// GetHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API, including uptime, current timestamp and host utilisation
// @Tags         health
// @Produce      json
// @Success      200 {object} healthResponse "Service is healthy"
// @Failure      503 {object} healthResponse "Service is unhealthy"
// @Router       /health [get]
// @Router       /healthz [get]
// @Router       /ready [get]
// @Router       /live [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:       "ok",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		SystemHealth: h.reporter.SystemHealth(r.Context()),
	}

	if !h.healthy.Load() {
		resp.Status = "unhealthy"
		_ = json.Write(w, http.StatusServiceUnavailable, resp)
		return
	}

	_ = json.Write(w, http.StatusOK, resp)
}
