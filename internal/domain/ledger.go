package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransferParams struct {
	UserID        string
	FromCurrency  Currency
	AmountFrom    decimal.Decimal
	ToCurrency    Currency
	AmountTo      decimal.Decimal
	TransactionID string
}

// Ledger applies the debit, the credit and the transaction completion as
// one atomic unit. Debit and credit always target the same user's rows.
type Ledger interface {
	Transfer(ctx context.Context, params TransferParams) error
}
