package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Get("/api/v1/state", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Put("/api/v1/currencies/{side}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Handle("/metrics", m.Handler())

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/state", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/state", nil),
		httptest.NewRequest(http.MethodPut, "/api/v1/currencies/source", nil),
		httptest.NewRequest(http.MethodGet, "/metrics", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/v1/state", http.MethodGet, "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/v1/currencies/{side}", http.MethodPut, "4xx")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/metrics", http.MethodGet, "2xx")))
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Get("/api/v1/state", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/nope/1", "/nope/2", "/nope/3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(UnmatchedRoute, http.MethodGet, "4xx")))
	// One series for all three paths.
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestsTotal))
}
