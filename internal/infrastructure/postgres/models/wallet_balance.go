package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletBalanceModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	UserID    string          `gorm:"type:uuid;not null;uniqueIndex:idx_user_currency"`
	Currency  string          `gorm:"not null;uniqueIndex:idx_user_currency"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WalletBalanceModel) TableName() string {
	return "wallet_balances"
}
