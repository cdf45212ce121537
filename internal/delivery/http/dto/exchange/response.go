package exchange

import "time"

type PreviewResponse struct {
	Success      bool   `json:"success"`
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
	Amount       string `json:"amount"`
	AmountTo     string `json:"amount_to"`
	Rate         string `json:"rate"`
	RateDisplay  string `json:"rate_display"`
	Total        string `json:"total"`
}

type TransactionResponse struct {
	ID           string    `json:"id"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	AmountFrom   string    `json:"amount_from"`
	AmountTo     string    `json:"amount_to"`
	Rate         string    `json:"rate"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ExchangeResponse struct {
	Success     bool                `json:"success"`
	Transaction TransactionResponse `json:"transaction"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
