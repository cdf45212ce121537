package exchange

// ExchangeInput carries one preview or execute request as received from
// the delivery layer, before any validation.
type ExchangeInput struct {
	UserID       string
	FromCurrency string
	ToCurrency   string
	Amount       string
}
