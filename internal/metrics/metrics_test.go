package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveConversion(t *testing.T) {
	m := New()

	m.ObserveConversion("success")
	m.ObserveConversion("success")
	m.ObserveConversion("network_error")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("network_error")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveConversion("success")
	m.ObserveProviderLatency(150 * time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), `conversions_total{outcome="success"} 1`)
	assert.Contains(t, string(body), "rate_provider_request_duration_seconds_count 1")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
