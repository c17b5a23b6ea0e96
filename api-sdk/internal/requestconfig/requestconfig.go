package requestconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"
)

const PackageVersion = "0.1.0"

// This interface is primarily used to describe an [*http.Client], but also
// supports custom HTTP implementations.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Middleware = func(*http.Request, MiddlewareNext) (*http.Response, error)

type MiddlewareNext = func(*http.Request) (*http.Response, error)

// RequestConfig represents all the state related to one request.
//
// Editing the variables inside RequestConfig directly is unstable api. Prefer
// composing the RequestOption instead if possible.
type RequestConfig struct {
	RequestTimeout time.Duration
	BaseURL        *url.URL
	HTTPClient     HTTPDoer
	Middlewares    []Middleware
	Headers        http.Header
	// ResponseInto copies the *http.Response of the corresponding request into
	// the given address.
	ResponseInto **http.Response
}

type RequestOption = func(*RequestConfig) error

// APIError is returned for any non-2xx response. Error and Message mirror the
// server's error envelope.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorText  string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sovereign: %d %s: %s", e.StatusCode, e.ErrorText, e.Message)
	}
	return fmt.Sprintf("sovereign: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func defaultHeaders() http.Header {
	h := http.Header{}
	h.Set("User-Agent", fmt.Sprintf("Sovereign/Client %s (%s; %s)", PackageVersion, runtime.GOOS, runtime.GOARCH))
	h.Set("Accept", "application/json")
	return h
}

func NewRequestConfig(opts ...RequestOption) (*RequestConfig, error) {
	cfg := &RequestConfig{
		HTTPClient: http.DefaultClient,
		Headers:    defaultHeaders(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.BaseURL == nil {
		return nil, errors.New("sovereign: base URL is not configured")
	}

	return cfg, nil
}

// ExecuteNewRequest sends params as a JSON body (when non-nil) and decodes
// the response into res (when non-nil).
func ExecuteNewRequest(ctx context.Context, method, path string, params, res any, opts ...RequestOption) error {
	cfg, err := NewRequestConfig(opts...)
	if err != nil {
		return err
	}

	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	var body io.Reader
	if params != nil {
		buf, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("sovereign: failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	target := cfg.BaseURL.JoinPath(strings.TrimPrefix(path, "/"))
	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return err
	}
	for k, v := range cfg.Headers {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	handler := cfg.HTTPClient.Do
	for i := len(cfg.Middlewares) - 1; i >= 0; i-- {
		mw, next := cfg.Middlewares[i], handler
		handler = func(r *http.Request) (*http.Response, error) {
			return mw(r, next)
		}
	}

	resp, err := handler(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if cfg.ResponseInto != nil {
		*cfg.ResponseInto = resp
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if res == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return fmt.Errorf("sovereign: failed to decode response: %w", err)
	}

	return nil
}
