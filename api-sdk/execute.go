package apisdk

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/hilthontt/sovereign/api-sdk/internal/requestconfig"
	"github.com/hilthontt/sovereign/api-sdk/option"
)

const ExecutionIDHeader = "X-Execution-ID"

type ExecuteService struct {
	Options []option.RequestOption
}

func NewExecuteService(opts ...option.RequestOption) *ExecuteService {
	return &ExecuteService{opts}
}

type ExecuteParams struct {
	Intent string `json:"intent"`
}

type ExecuteResponse struct {
	Status             string `json:"status"`
	IntelligenceReport string `json:"intelligence_report"`
	WorldContext       string `json:"world_context"`
	SystemHealth       string `json:"system_health"`

	// ExecutionID is read from the X-Execution-ID response header.
	ExecutionID string `json:"-"`
}

// New submits an intent. Blank intents are rejected without a request.
func (s *ExecuteService) New(ctx context.Context, params ExecuteParams, opts ...option.RequestOption) (*ExecuteResponse, error) {
	if strings.TrimSpace(params.Intent) == "" {
		return nil, ErrMissingIntent
	}

	var raw *http.Response
	opts = slices.Concat(s.Options, opts, []option.RequestOption{option.WithResponseInto(&raw)})

	res := &ExecuteResponse{}
	if err := requestconfig.ExecuteNewRequest(ctx, http.MethodPost, "execute", params, res, opts...); err != nil {
		return nil, err
	}
	if raw != nil {
		res.ExecutionID = raw.Header.Get(ExecutionIDHeader)
	}

	return res, nil
}
