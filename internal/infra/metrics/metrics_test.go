package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_ObserveRun(t *testing.T) {
	m := New()
	finished := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)

	m.ObserveRun(&entity.RunSummary{Executed: 2, Exhausted: 1, Skipped: 2}, finished)
	m.ObserveRun(&entity.RunSummary{Executed: 1, Failed: 1}, finished)

	body := scrape(t, m)
	assert.Contains(t, body, `bookkeeping_recurring_rule_runs_total{outcome="executed"} 3`)
	assert.Contains(t, body, `bookkeeping_recurring_rule_runs_total{outcome="exhausted"} 1`)
	assert.Contains(t, body, `bookkeeping_recurring_rule_runs_total{outcome="skipped"} 2`)
	assert.Contains(t, body, `bookkeeping_recurring_rule_runs_total{outcome="failed"} 1`)
	assert.Contains(t, body, "bookkeeping_recurring_rule_last_run_timestamp_seconds 1.7408088e+09")
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "/api/v1/transfers", http.StatusCreated, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/v1/transfers", http.StatusCreated, 30*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/v1/transfers", http.StatusUnprocessableEntity, 5*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `bookkeeping_http_requests_total{method="POST",route="/api/v1/transfers",status="201"} 2`)
	assert.Contains(t, body, `bookkeeping_http_requests_total{method="POST",route="/api/v1/transfers",status="422"} 1`)
	assert.Contains(t, body, `bookkeeping_http_request_duration_seconds_count{method="POST",route="/api/v1/transfers"} 3`)
}
