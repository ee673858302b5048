package handlers

import (
	"net/http"
)

// NewGetStateHandler returns the converter screen.
// @Summary Get converter state
// @Description Returns the inputs, busy flag, last result or error, and last alert
// @Tags converter
// @Produce json
// @Success 200 {object} models.StateResponse
// @Router /state [get]
func NewGetStateHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeState(w, conv, nil)
	}
}
