package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletBalance is the single balance row a user holds per currency.
// Amount never goes below zero; mutations happen only through the ledger.
type WalletBalance struct {
	UserID    string
	Currency  Currency
	Amount    decimal.Decimal
	UpdatedAt time.Time
}
