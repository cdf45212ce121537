package mappers

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainBalance(model *models.WalletBalanceModel) *domain.WalletBalance {
	return &domain.WalletBalance{
		UserID:    model.UserID,
		Currency:  domain.Currency(model.Currency),
		Amount:    model.Amount,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMBalance(balance *domain.WalletBalance) *models.WalletBalanceModel {
	return &models.WalletBalanceModel{
		UserID:   balance.UserID,
		Currency: balance.Currency.String(),
		Amount:   balance.Amount,
	}
}
