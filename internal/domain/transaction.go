package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusRejected  TransactionStatus = "rejected"
)

// Transaction records one exchange attempt. It is created pending and ends
// in exactly one terminal status; rejected transactions keep the failure
// message as an audit trail.
type Transaction struct {
	ID           string
	UserID       string
	FromCurrency Currency
	ToCurrency   Currency
	AmountFrom   decimal.Decimal
	AmountTo     decimal.Decimal
	Rate         decimal.Decimal
	Status       TransactionStatus
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TransactionFilter struct {
	Status string
	Page   int
	Limit  int
}
