// Package metrics exposes Prometheus instruments for the API and the rule worker.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

const namespace = "bookkeeping"

// Metrics holds the instruments on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	ruleRuns     *prometheus.CounterVec
	lastRun      prometheus.Gauge
}

// New creates and registers every instrument.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ruleRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recurring_rule_runs_total",
			Help:      "Recurring rules processed by the batch runner, by outcome.",
		}, []string{"outcome"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recurring_rule_last_run_timestamp_seconds",
			Help:      "Unix time of the last completed batch run.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.ruleRuns,
		m.lastRun,
	)

	return m
}

// ObserveRequest implements middleware.RequestObserver.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRun records the outcome of one batch run.
func (m *Metrics) ObserveRun(summary *entity.RunSummary, finishedAt time.Time) {
	m.ruleRuns.WithLabelValues("executed").Add(float64(summary.Executed))
	m.ruleRuns.WithLabelValues("exhausted").Add(float64(summary.Exhausted))
	m.ruleRuns.WithLabelValues("skipped").Add(float64(summary.Skipped))
	m.ruleRuns.WithLabelValues("failed").Add(float64(summary.Failed))
	m.lastRun.Set(float64(finishedAt.Unix()))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
