package execute

import (
	"context"
	"net/http"

	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/hilthontt/sovereign/internal/infrastructure/json"
)

const ExecutionIDHeader = "X-Execution-ID"

type Executor interface {
	Execute(ctx context.Context, raw string) domain.Report
}

type Handler struct {
	executor Executor
}

func NewHandler(executor Executor) *Handler {
	return &Handler{
		executor: executor,
	}
}

// ExecuteHandler godoc
// @Summary      Execute an intent
// @Description  Routes a free-text intent through the strategy templates and, for research keywords, an encyclopedia lookup that is persisted to the search log. Internal failures are reported as text with status 200.
// @Tags         execute
// @Accept       json
// @Produce      json
// @Param        request body executeRequest true "Intent to execute"
// @Success      200 {object} executeResponse "Intent executed"
// @Failure      400 {object} json.ErrorResponse "Malformed body or missing intent"
// @Failure      429 {object} json.ErrorResponse "Rate limit exceeded"
// @Router       /execute [post]
func (h *Handler) ExecuteHandler(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if req.Intent == nil {
		json.WriteValidationError(w, domain.ErrIntentMissing)
		return
	}

	report := h.executor.Execute(r.Context(), *req.Intent)

	w.Header().Set(ExecutionIDHeader, report.ExecutionID)
	_ = json.Write(w, http.StatusOK, executeResponse{
		Status:             report.Status,
		IntelligenceReport: report.IntelligenceReport,
		WorldContext:       report.WorldContext,
		SystemHealth:       report.SystemHealth,
	})
}
