package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied when the controller starts.
const (
	DefaultAmount         = "1"
	DefaultSourceCurrency = USD
	DefaultTargetCurrency = EUR
)

var (
	errEmptyAmount    = errors.New("amount is empty")
	errNegativeAmount = errors.New("amount is negative")
	errInfiniteAmount = errors.New("amount is not finite")
)

// ParseAmount converts user-entered amount text into a finite, non-negative number.
func ParseAmount(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, errEmptyAmount
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a number: %w", text, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errInfiniteAmount
	}
	if v < 0 {
		return 0, errNegativeAmount
	}
	return v, nil
}

// ConversionRequest carries the form inputs for a single conversion.
type ConversionRequest struct {
	Amount         string `json:"amount" validate:"amount"`
	SourceCurrency string `json:"source_currency" validate:"currency"`
	TargetCurrency string `json:"target_currency" validate:"currency"`
}

// RateTable maps target currency codes to their rate against one source currency.
type RateTable map[string]float64

// ConversionResult is the outcome of a successful conversion.
type ConversionResult struct {
	Amount          float64   `json:"amount"`
	SourceCurrency  string    `json:"source_currency"`
	TargetCurrency  string    `json:"target_currency"`
	Rate            float64   `json:"rate"`
	ConvertedAmount float64   `json:"converted_amount"` // Amount * Rate, never rounded
	ConvertedAt     time.Time `json:"converted_at"`
}

// Display renders the result line, e.g. "1 USD = 0.85 EUR".
// Only the converted amount is rounded, to two decimals.
func (r ConversionResult) Display() string {
	return fmt.Sprintf("%s %s = %s %s",
		decimal.NewFromFloat(r.Amount).String(),
		r.SourceCurrency,
		decimal.NewFromFloat(r.ConvertedAmount).StringFixed(2),
		r.TargetCurrency,
	)
}

// Status is the display mode of the result region.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusResult  Status = "result"
	StatusError   Status = "error"
)

// Alert is a user-facing notice raised on validation or fetch failure.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

var (
	AlertInvalidAmount   = Alert{Title: "Invalid Input", Message: "Please enter a valid amount."}
	AlertInvalidCurrency = Alert{Title: "Invalid Input", Message: "Please select a supported currency."}
	AlertRateNotFound    = Alert{Title: "Error", Message: "Conversion rate not found."}
	AlertNetwork         = Alert{Title: "Network Error", Message: "Unable to fetch conversion rate. Please try again."}
)

// ErrorDisplay is shown in the result region when no result is available.
const ErrorDisplay = "Unable to fetch conversion rate. Try again."

// ViewState is everything the single screen renders.
type ViewState struct {
	Status         Status            `json:"status"`
	Amount         string            `json:"amount"`
	SourceCurrency string            `json:"source_currency"`
	TargetCurrency string            `json:"target_currency"`
	Loading        bool              `json:"loading"`
	Result         *ConversionResult `json:"result,omitempty"`
	Error          string            `json:"error,omitempty"`
	Alert          *Alert            `json:"alert,omitempty"`
}

// NewViewState returns the start-up state: idle, 1 USD -> EUR, no result.
func NewViewState() ViewState {
	return ViewState{
		Status:         StatusIdle,
		Amount:         DefaultAmount,
		SourceCurrency: DefaultSourceCurrency,
		TargetCurrency: DefaultTargetCurrency,
	}
}

// Request returns the conversion request described by the current inputs.
func (s ViewState) Request() ConversionRequest {
	return ConversionRequest{
		Amount:         s.Amount,
		SourceCurrency: s.SourceCurrency,
		TargetCurrency: s.TargetCurrency,
	}
}

// Clone returns a deep copy safe to hand out of the controller.
func (s ViewState) Clone() ViewState {
	out := s
	if s.Result != nil {
		r := *s.Result
		out.Result = &r
	}
	if s.Alert != nil {
		a := *s.Alert
		out.Alert = &a
	}
	return out
}
