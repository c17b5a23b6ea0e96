package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sovereign"

// Metrics defines our Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	intentCount     *prometheus.CounterVec
	lookupCount     *prometheus.CounterVec
	lookupDuration  prometheus.Histogram
	storeFailures   prometheus.Counter
	backgroundTasks *prometheus.CounterVec
	publishFailures prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		intentCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intents_total",
			Help:      "Executed intents by research and security routing.",
		}, []string{"research", "security"}),
		lookupCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "encyclopedia_lookups_total",
			Help:      "Encyclopedia summary lookups by outcome.",
		}, []string{"outcome"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "encyclopedia_lookup_duration_seconds",
			Help:      "Encyclopedia summary lookup latency.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		storeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_record_store_failures_total",
			Help:      "Search records that could not be appended.",
		}),
		backgroundTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "background_tasks_total",
			Help:      "Background tasks by result (completed, failed, dropped).",
		}, []string{"result"}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Intent events that could not be published.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCount,
		m.requestDuration,
		m.intentCount,
		m.lookupCount,
		m.lookupDuration,
		m.storeFailures,
		m.backgroundTasks,
		m.publishFailures,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RequestCompleted(method, route string, status int, elapsed time.Duration) {
	m.requestCount.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) IntentExecuted(research, security bool) {
	m.intentCount.WithLabelValues(strconv.FormatBool(research), strconv.FormatBool(security)).Inc()
}

func (m *Metrics) LookupCompleted(outcome string, elapsed time.Duration) {
	m.lookupCount.WithLabelValues(outcome).Inc()
	m.lookupDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) StoreFailed() {
	m.storeFailures.Inc()
}

func (m *Metrics) TaskFinished(result string) {
	m.backgroundTasks.WithLabelValues(result).Inc()
}

func (m *Metrics) PublishFailed() {
	m.publishFailures.Inc()
}
