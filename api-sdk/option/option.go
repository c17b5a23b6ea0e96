package option

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hilthontt/sovereign/api-sdk/internal/requestconfig"
)

// RequestOption is an option for the requests made by the sovereign API
// Client which can be supplied to clients, services, and methods.
type RequestOption = requestconfig.RequestOption

type Middleware = requestconfig.Middleware

type MiddlewareNext = requestconfig.MiddlewareNext

func WithBaseURL(base string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		u, err := url.Parse(strings.TrimRight(base, "/") + "/")
		if err != nil {
			return fmt.Errorf("requestoption: WithBaseURL failed to parse url %q: %w", base, err)
		}
		r.BaseURL = u
		return nil
	}
}

func WithEnvironmentDev() RequestOption {
	return WithBaseURL("http://localhost:8000")
}

func WithHTTPClient(client requestconfig.HTTPDoer) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		if client == nil {
			return fmt.Errorf("requestoption: custom http client cannot be nil")
		}
		r.HTTPClient = client
		return nil
	}
}

func WithHeader(key, value string) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.Headers.Set(key, value)
		return nil
	}
}

func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.RequestTimeout = timeout
		return nil
	}
}

// WithMiddleware appends middlewares; the first one registered runs
// outermost.
func WithMiddleware(middlewares ...Middleware) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.Middlewares = append(r.Middlewares, middlewares...)
		return nil
	}
}

// WithResponseInto stores the raw response of the request in dst.
func WithResponseInto(dst **http.Response) RequestOption {
	return func(r *requestconfig.RequestConfig) error {
		r.ResponseInto = dst
		return nil
	}
}
