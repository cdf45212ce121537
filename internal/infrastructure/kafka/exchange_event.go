package kafka

type ExchangeEvent struct {
	EventID       string `json:"event_id"`
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	FromCurrency  string `json:"from_currency"`
	ToCurrency    string `json:"to_currency"`
	AmountFrom    string `json:"amount_from"`
	AmountTo      string `json:"amount_to"`
	Rate          string `json:"rate"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"error_message,omitempty"`
}
