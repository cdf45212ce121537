package models

import (
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionModel struct {
	ID           string                   `gorm:"primaryKey;type:uuid"`
	UserID       string                   `gorm:"type:uuid;not null;index"`
	FromCurrency string                   `gorm:"not null"`
	ToCurrency   string                   `gorm:"not null"`
	AmountFrom   decimal.Decimal          `gorm:"type:decimal(20,8);not null"`
	AmountTo     decimal.Decimal          `gorm:"type:decimal(20,8);not null"`
	Rate         decimal.Decimal          `gorm:"type:decimal(20,8);not null"`
	Status       domain.TransactionStatus `gorm:"not null;index;default:pending"`
	ErrorMessage string                   `gorm:"type:text"`
	CreatedAt    time.Time                `gorm:"index:idx_tx_created_at"`
	UpdatedAt    time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
