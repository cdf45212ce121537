package repository

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultLedgerRepository moves funds between two balance rows of the same
// user. Debit, credit and transaction completion run in one database
// transaction; the guarded debit update keeps the source row non-negative
// under concurrent transfers.
type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

func (r *DefaultLedgerRepository) Transfer(ctx context.Context, params domain.TransferParams) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debit := tx.Model(&models.WalletBalanceModel{}).
			Where("user_id = ? AND currency = ? AND amount >= ?",
				params.UserID, params.FromCurrency.String(), params.AmountFrom).
			Update("amount", gorm.Expr("amount - ?", params.AmountFrom))
		if debit.Error != nil {
			return fmt.Errorf("debit failed: %w", debit.Error)
		}
		if debit.RowsAffected == 0 {
			return domain.ErrInsufficientBalance
		}

		credit := tx.Model(&models.WalletBalanceModel{}).
			Where("user_id = ? AND currency = ?",
				params.UserID, params.ToCurrency.String()).
			Update("amount", gorm.Expr("amount + ?", params.AmountTo))
		if credit.Error != nil {
			return fmt.Errorf("credit failed: %w", credit.Error)
		}
		if credit.RowsAffected == 0 {
			return domain.ErrDestinationBalanceNotFound
		}

		completed := tx.Model(&models.TransactionModel{}).
			Where("id = ? AND status = ?", params.TransactionID, domain.StatusPending).
			Update("status", domain.StatusCompleted)
		if completed.Error != nil {
			return fmt.Errorf("failed to complete transaction: %w", completed.Error)
		}
		if completed.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, params.TransactionID)
		}

		return nil
	})
}
