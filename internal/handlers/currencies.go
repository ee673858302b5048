package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Selector sides accepted by NewSelectCurrencyHandler.
const (
	SideSource = "source"
	SideTarget = "target"
)

// NewGetCurrenciesHandler lists the selectable currencies.
// @Summary List currencies
// @Description Returns the supported currency codes in display order
// @Tags converter
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewGetCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.CurrenciesResponse{Currencies: models.Currencies()})
	}
}

// NewSelectCurrencyHandler changes the source or target selector. A change
// reconverts the current amount.
// @Summary Select currency
// @Description Sets the source or target currency and reconverts when the value changed
// @Tags converter
// @Accept json
// @Produce json
// @Param side path string true "source or target"
// @Param request body models.CurrencyRequest true "Currency"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.StateResponse "Unsupported currency or invalid amount"
// @Failure 404 {object} models.ErrorResponse "Unknown selector"
// @Failure 409 {object} models.StateResponse "Superseded by a newer conversion"
// @Failure 502 {object} models.StateResponse "Rate provider failure"
// @Router /currencies/{side} [put]
func NewSelectCurrencyHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		side := chi.URLParam(r, "side")
		if side != SideSource && side != SideTarget {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "unknown selector " + side})
			return
		}

		var req models.CurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}

		ctx := conversionContext(r)
		var err error
		if side == SideSource {
			err = conv.SelectSourceCurrency(ctx, req.Currency)
		} else {
			err = conv.SelectTargetCurrency(ctx, req.Currency)
		}
		writeState(w, conv, err)
	}
}
