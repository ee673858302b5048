package handlers

import (
	"net/http"
)

// NewConvertHandler converts the current inputs, as the Convert button does.
// @Summary Convert
// @Description Fetches the latest rate table for the source currency and converts the current amount
// @Tags converter
// @Produce json
// @Success 200 {object} models.StateResponse "Conversion applied"
// @Failure 400 {object} models.StateResponse "Invalid amount"
// @Failure 409 {object} models.StateResponse "Superseded by a newer conversion"
// @Failure 502 {object} models.StateResponse "Rate not found or provider failure"
// @Router /convert [post]
func NewConvertHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := conv.Refresh(conversionContext(r))
		writeState(w, conv, err)
	}
}
