package apisdk

import (
	"context"
	"net/http"
	"slices"

	"github.com/hilthontt/sovereign/api-sdk/internal/requestconfig"
	"github.com/hilthontt/sovereign/api-sdk/option"
)

type HealthService struct {
	Options []option.RequestOption
}

func NewHealthService(opts ...option.RequestOption) *HealthService {
	return &HealthService{opts}
}

func (h *HealthService) Get(ctx context.Context, opts ...option.RequestOption) (*HealthResponse, error) {
	opts = slices.Concat(h.Options, opts)

	res := &HealthResponse{}
	err := requestconfig.ExecuteNewRequest(ctx, http.MethodGet, "health", nil, res, opts...)

	return res, err
}

type HealthResponse struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	Uptime       string `json:"uptime"`
	SystemHealth string `json:"system_health"`
}
