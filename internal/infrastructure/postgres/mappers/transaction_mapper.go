package mappers

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:           model.ID,
		UserID:       model.UserID,
		FromCurrency: domain.Currency(model.FromCurrency),
		ToCurrency:   domain.Currency(model.ToCurrency),
		AmountFrom:   model.AmountFrom,
		AmountTo:     model.AmountTo,
		Rate:         model.Rate,
		Status:       model.Status,
		ErrorMessage: model.ErrorMessage,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMTransaction(transaction *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		FromCurrency: transaction.FromCurrency.String(),
		ToCurrency:   transaction.ToCurrency.String(),
		AmountFrom:   transaction.AmountFrom,
		AmountTo:     transaction.AmountTo,
		Rate:         transaction.Rate,
		Status:       transaction.Status,
		ErrorMessage: transaction.ErrorMessage,
	}
}
