package json

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	var payload struct {
		Intent string `json:"intent"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"intent":"scan","extra":1}`))
	require.NoError(t, Read(r, &payload))
	assert.Equal(t, "scan", payload.Intent)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.True(t, errors.Is(Read(r, &payload), ErrEmptyBody))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	assert.Error(t, Read(r, &payload))
}

func TestWriteRateLimitError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteRateLimitError(rec, 3)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"error":"Too Many Requests"`)
}
