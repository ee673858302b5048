package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterConverterRoutes mounts the converter screen endpoints on r.
func RegisterConverterRoutes(r chi.Router, conv Converter) {
	r.Get("/state", NewGetStateHandler(conv))
	r.Get("/currencies", NewGetCurrenciesHandler())
	r.Put("/currencies/{side}", NewSelectCurrencyHandler(conv))
	r.Put("/amount", NewSetAmountHandler(conv))
	r.Post("/convert", NewConvertHandler(conv))
}

// NewHealthHandler reports liveness.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
