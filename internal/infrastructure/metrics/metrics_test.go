package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := New()

	m.RequestCompleted(http.MethodPost, "/execute", http.StatusOK, 20*time.Millisecond)
	m.IntentExecuted(true, false)
	m.IntentExecuted(true, false)
	m.LookupCompleted("acquired", 120*time.Millisecond)
	m.StoreFailed()
	m.TaskFinished("completed")
	m.PublishFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("POST", "/execute", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.intentCount.WithLabelValues("true", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookupCount.WithLabelValues("acquired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backgroundTasks.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.publishFailures))
}

func TestMetricsHandler(t *testing.T) {
	m := New()
	m.LookupCompleted("friction", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sovereign_encyclopedia_lookups_total{outcome="friction"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
