package exchange

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

type PreviewOutput struct {
	FromCurrency domain.Currency
	ToCurrency   domain.Currency
	Amount       decimal.Decimal
	AmountTo     decimal.Decimal
	Rate         decimal.Decimal
	RateDisplay  decimal.Decimal
	Total        decimal.Decimal
}

type ExchangeOutput struct {
	Transaction *domain.Transaction
}
