package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewSetAmountHandler stores the amount text without converting.
// @Summary Edit amount
// @Description Stores the amount as typed. Use POST /convert to reprice.
// @Tags converter
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Amount"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /amount [put]
func NewSetAmountHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}

		conv.SetAmount(req.Amount)
		writeState(w, conv, nil)
	}
}
