package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_LOG_FORMAT",
		"EXCHANGE_RATE_API_URL", "EXCHANGE_RATE_API_KEY", "EXCHANGE_RATE_TIMEOUT_SECOND",
		"KAFKA_BROKERS", "KAFKA_TOPIC",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	oldVersion, oldCommit, oldDate := buildVersion, buildCommit, buildDate
	defer func() { buildVersion, buildCommit, buildDate = oldVersion, oldCommit, oldDate }()

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	appHost, appPort, logLevel, logFormat,
		rateAPIURL, rateAPIKey, rateTimeoutSecond,
		kafkaBrokers, kafkaTopic, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, logger.FormatJSON, logFormat)
	assert.Equal(t, facades.DefaultExchangeRateAPIURL, rateAPIURL)
	assert.Empty(t, rateAPIKey)
	assert.Equal(t, 10, rateTimeoutSecond)
	assert.Empty(t, kafkaBrokers)
	assert.Equal(t, "currency-conversions", kafkaTopic)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv(t)
	// godotenv does not override variables that are already set, even when empty.
	for _, key := range []string{"APP_PORT", "EXCHANGE_RATE_API_KEY", "EXCHANGE_RATE_TIMEOUT_SECOND", "KAFKA_BROKERS"} {
		require.NoError(t, os.Unsetenv(key))
	}

	path := t.TempDir() + "/config.env"
	content := strings.Join([]string{
		"APP_PORT=9090",
		"EXCHANGE_RATE_API_KEY=secret",
		"EXCHANGE_RATE_TIMEOUT_SECOND=3",
		"KAFKA_BROKERS=broker-1:9092, broker-2:9092",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{"APP_PORT", "EXCHANGE_RATE_API_KEY", "EXCHANGE_RATE_TIMEOUT_SECOND", "KAFKA_BROKERS"} {
			_ = os.Unsetenv(key)
		}
	})

	_, appPort, _, _, _, rateAPIKey, rateTimeoutSecond, kafkaBrokers, _, err := parseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "secret", rateAPIKey)
	assert.Equal(t, 3, rateTimeoutSecond)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, kafkaBrokers)
}

func TestParseConfig_InvalidTimeout(t *testing.T) {
	resetEnv(t)
	t.Setenv("EXCHANGE_RATE_TIMEOUT_SECOND", "soon")

	_, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

// newProvider serves a fixed rate table per source currency and counts requests.
func newProvider(t *testing.T, tables map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		parts := strings.Split(r.URL.Path, "/")
		table, ok := tables[parts[len(parts)-1]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"result":"success","conversion_rates":` + table + `}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (int, models.StateResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))

	var resp models.StateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return w.Code, resp
}

func TestRouter_EndToEnd(t *testing.T) {
	provider, calls := newProvider(t, map[string]string{
		"USD": `{"USD":1,"EUR":0.85,"JPY":149.3}`,
		"GBP": `{"GBP":1,"EUR":1.17}`,
	})

	rates := facades.NewExchangeRateAPIFacade(provider.URL, "key", 0)
	conv := services.NewConverter(rates, services.NewLogAlerter())
	router := newRouter(conv, metrics.New(), "/swagger/doc.json")

	require.NoError(t, conv.Start(context.Background()))
	assert.EqualValues(t, 1, calls.Load())

	code, state := doJSON(t, router, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, state.Result)
	assert.Equal(t, "1 USD = 0.85 EUR", state.Result.Display)

	// Editing the amount alone does not fetch.
	code, state = doJSON(t, router, http.MethodPut, "/api/v1/amount", `{"amount":"10"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10", state.Amount)
	assert.EqualValues(t, 1, calls.Load())

	code, state = doJSON(t, router, http.MethodPost, "/api/v1/convert", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10 USD = 8.50 EUR", state.Result.Display)
	assert.EqualValues(t, 2, calls.Load())

	// Changing a selector refetches for the new source.
	code, state = doJSON(t, router, http.MethodPut, "/api/v1/currencies/source", `{"currency":"GBP"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10 GBP = 11.70 EUR", state.Result.Display)
	assert.EqualValues(t, 3, calls.Load())

	// GBP table has no JPY.
	code, state = doJSON(t, router, http.MethodPut, "/api/v1/currencies/target", `{"currency":"JPY"}`)
	require.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, models.StatusError, state.Status)
	assert.Nil(t, state.Result)
	assert.Equal(t, &models.AlertRateNotFound, state.Alert)

	// Invalid amounts never reach the provider.
	doJSON(t, router, http.MethodPut, "/api/v1/amount", `{"amount":"abc"}`)
	code, state = doJSON(t, router, http.MethodPost, "/api/v1/convert", "")
	require.Equal(t, http.StatusBadRequest, code)
	assert.False(t, state.Loading)
	assert.Equal(t, &models.AlertInvalidAmount, state.Alert)
	assert.EqualValues(t, 4, calls.Load())

	// Provider failure for an unknown table.
	doJSON(t, router, http.MethodPut, "/api/v1/amount", `{"amount":"1"}`)
	code, state = doJSON(t, router, http.MethodPut, "/api/v1/currencies/source", `{"currency":"CHF"}`)
	require.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, &models.AlertNetwork, state.Alert)
	assert.False(t, state.Loading)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	provider, calls := newProvider(t, map[string]string{"USD": `{"EUR":0.85}`})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, "127.0.0.1", "0", "error", logger.FormatJSON,
		provider.URL, "key", 1, nil, "currency-conversions")
	assert.NoError(t, err)
	assert.EqualValues(t, 0, calls.Load(), "a cancelled context aborts the start-up request")
}

func TestRun_StopsServerBeforeReturning(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	provider, calls := newProvider(t, map[string]string{"USD": `{"EUR":0.85}`})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := run(ctx, "127.0.0.1", "0", "error", logger.FormatJSON,
		provider.URL, "key", 1, nil, "currency-conversions")
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())

	// The serve goroutine has exited, so swapping the global logger is safe.
	logger.Log = zap.NewNop().Sugar()
}
