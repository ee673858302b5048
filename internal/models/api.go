package models

// AmountRequest represents the JSON body for editing the amount field
// swagger:model AmountRequest
type AmountRequest struct {
	// Amount as typed by the user
	// required: true
	// example: 100
	Amount string `json:"amount"`
}

// CurrencyRequest represents the JSON body for a currency selector change
// swagger:model CurrencyRequest
type CurrencyRequest struct {
	// Currency code from the supported set
	// required: true
	// example: EUR
	Currency string `json:"currency"`
}

// ResultResponse represents a computed conversion
// swagger:model ResultResponse
type ResultResponse struct {
	Amount          float64 `json:"amount" example:"1"`
	SourceCurrency  string  `json:"source_currency" example:"USD"`
	TargetCurrency  string  `json:"target_currency" example:"EUR"`
	Rate            float64 `json:"rate" example:"0.85"`
	ConvertedAmount float64 `json:"converted_amount" example:"0.85"`
	// Rounded line for display
	Display string `json:"display" example:"1 USD = 0.85 EUR"`
}

// StateResponse represents the converter screen
// swagger:model StateResponse
type StateResponse struct {
	// One of idle, loading, result, error
	Status         Status          `json:"status" example:"result"`
	Amount         string          `json:"amount" example:"1"`
	SourceCurrency string          `json:"source_currency" example:"USD"`
	TargetCurrency string          `json:"target_currency" example:"EUR"`
	Loading        bool            `json:"loading"`
	Result         *ResultResponse `json:"result,omitempty"`
	// Message shown in place of a result
	Error string `json:"error,omitempty"`
	// Last alert raised by the converter
	Alert *Alert `json:"alert,omitempty"`
}

// NewStateResponse maps a ViewState to its wire form.
func NewStateResponse(s ViewState) StateResponse {
	resp := StateResponse{
		Status:         s.Status,
		Amount:         s.Amount,
		SourceCurrency: s.SourceCurrency,
		TargetCurrency: s.TargetCurrency,
		Loading:        s.Loading,
		Error:          s.Error,
		Alert:          s.Alert,
	}
	if s.Result != nil {
		resp.Result = &ResultResponse{
			Amount:          s.Result.Amount,
			SourceCurrency:  s.Result.SourceCurrency,
			TargetCurrency:  s.Result.TargetCurrency,
			Rate:            s.Result.Rate,
			ConvertedAmount: s.Result.ConvertedAmount,
			Display:         s.Result.Display(),
		}
	}
	return resp
}

// CurrenciesResponse lists the selectable currencies
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// ErrorResponse represents a malformed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: invalid request body
	Error string `json:"error"`
}
