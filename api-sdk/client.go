package apisdk

import (
	"context"
	"net/http"
	"os"
	"slices"

	"github.com/hilthontt/sovereign/api-sdk/internal/requestconfig"
	"github.com/hilthontt/sovereign/api-sdk/option"
)

type Client struct {
	Options []option.RequestOption
	Execute *ExecuteService
	Health  *HealthService
}

// APIError is returned for non-2xx responses.
type APIError = requestconfig.APIError

func DefaultClientOptions() []option.RequestOption {
	defaults := []option.RequestOption{
		option.WithEnvironmentDev(),
	}
	if o, ok := os.LookupEnv("SOVEREIGN_BASE_URL"); ok {
		defaults = append(defaults, option.WithBaseURL(o))
	}
	return defaults
}

func NewClient(opts ...option.RequestOption) *Client {
	opts = append(DefaultClientOptions(), opts...)

	return &Client{
		Options: opts,
		Execute: NewExecuteService(opts...),
		Health:  NewHealthService(opts...),
	}
}

func (c *Client) Do(ctx context.Context, method, path string, params, res any, opts ...option.RequestOption) error {
	opts = slices.Concat(c.Options, opts)
	return requestconfig.ExecuteNewRequest(ctx, method, path, params, res, opts...)
}

func (c *Client) Get(ctx context.Context, path string, res any, opts ...option.RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, res, opts...)
}

func (c *Client) Post(ctx context.Context, path string, params, res any, opts ...option.RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, params, res, opts...)
}
