package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

//go:generate mockgen -source=converter.go -destination=converter_mock.go -package=handlers

// Converter is the screen controller driven by the handlers.
type Converter interface {
	State() models.ViewState
	SetAmount(amount string)
	SelectSourceCurrency(ctx context.Context, code string) error
	SelectTargetCurrency(ctx context.Context, code string) error
	Refresh(ctx context.Context) error
}

// conversionContext keeps the request's values but not its cancellation, so a
// client hanging up mid-fetch does not turn the shared state into a network error.
// The rate provider's client timeout still bounds the fetch.
func conversionContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// statusFor maps converter errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, services.ErrNetwork), errors.Is(err, services.ErrRateNotFound):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeState responds with the current screen state and a status derived from err.
func writeState(w http.ResponseWriter, conv Converter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.Log.Errorw("unexpected converter error", "error", err)
	}
	writeJSON(w, code, models.NewStateResponse(conv.State()))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
