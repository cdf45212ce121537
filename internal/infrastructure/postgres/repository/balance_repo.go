package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultBalanceRepository struct {
	DB *gorm.DB
}

func NewDefaultBalanceRepository(db *gorm.DB) *DefaultBalanceRepository {
	return &DefaultBalanceRepository{DB: db}
}

func (r *DefaultBalanceRepository) GetBalance(ctx context.Context, userID string, currency domain.Currency) (*domain.WalletBalance, error) {
	var model models.WalletBalanceModel
	err := r.DB.WithContext(ctx).
		First(&model, "user_id = ? AND currency = ?", userID, currency.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBalanceNotFound, currency)
		}
		return nil, err
	}
	return mappers.ToDomainBalance(&model), nil
}

func (r *DefaultBalanceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.WalletBalance, error) {
	var balanceModels []models.WalletBalanceModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("currency ASC").
		Find(&balanceModels).Error
	if err != nil {
		return nil, err
	}

	balances := make([]*domain.WalletBalance, 0, len(balanceModels))
	for i := range balanceModels {
		balances = append(balances, mappers.ToDomainBalance(&balanceModels[i]))
	}
	return balances, nil
}

// SeedBalances creates one row per supported currency with the starting
// amounts. Existing rows are left untouched.
func (r *DefaultBalanceRepository) SeedBalances(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, currency := range domain.SupportedCurrencies() {
			model := models.WalletBalanceModel{
				UserID:   userID,
				Currency: currency.String(),
				Amount:   domain.StartingBalances[currency],
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "currency"}},
				DoNothing: true,
			}).Create(&model).Error
			if err != nil {
				return fmt.Errorf("failed to seed %s balance: %w", currency, err)
			}
		}
		return nil
	})
}
