package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// DefaultExchangeRateAPIURL is the v6 endpoint root of exchangerate-api.com.
const DefaultExchangeRateAPIURL = "https://v6.exchangerate-api.com/v6"

// ErrProvider is returned for every failure to obtain a usable rate table.
var ErrProvider = errors.New("exchange rate provider error")

// latestRatesResponse is the subset of the v6 /latest payload the facade reads.
type latestRatesResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type,omitempty"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ExchangeRateAPIFacade fetches rate tables from exchangerate-api.com over HTTP.
type ExchangeRateAPIFacade struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
}

// NewExchangeRateAPIFacade creates a facade with its own HTTP client bounded by timeout.
func NewExchangeRateAPIFacade(baseURL, apiKey string, timeout time.Duration) *ExchangeRateAPIFacade {
	return NewExchangeRateAPIFacadeWithClient(baseURL, apiKey, &http.Client{Timeout: timeout})
}

// NewExchangeRateAPIFacadeWithClient creates a facade around an existing HTTP client.
func NewExchangeRateAPIFacadeWithClient(baseURL, apiKey string, client HTTPDoer) *ExchangeRateAPIFacade {
	return &ExchangeRateAPIFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// GetRateTable fetches the full latest rate table for the source currency.
func (f *ExchangeRateAPIFacade) GetRateTable(ctx context.Context, source string) (models.RateTable, error) {
	endpoint := fmt.Sprintf("%s/%s/latest/%s", f.baseURL, url.PathEscape(f.apiKey), url.PathEscape(source))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrProvider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("exchange rate request failed", "source", source, "error", err)
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Log.Errorw("exchange rate provider returned non-OK status",
			"source", source, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
	}

	var payload latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("failed to decode exchange rate response", "source", source, "error", err)
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrProvider, err)
	}

	if payload.Result != "success" {
		logger.Log.Errorw("exchange rate provider reported failure",
			"source", source, "result", payload.Result, "error_type", payload.ErrorType)
		return nil, fmt.Errorf("%w: result=%s error-type=%s", ErrProvider, payload.Result, payload.ErrorType)
	}
	if payload.ConversionRates == nil {
		return nil, fmt.Errorf("%w: response has no conversion_rates", ErrProvider)
	}

	logger.Log.Debugw("exchange rates fetched", "source", source, "count", len(payload.ConversionRates))

	return models.RateTable(payload.ConversionRates), nil
}
