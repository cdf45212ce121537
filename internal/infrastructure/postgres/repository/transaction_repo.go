package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	model := mappers.ToGORMTransaction(transaction)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *DefaultTransactionRepository) MarkRejected(ctx context.Context, transactionID, errorMessage string) error {
	result := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("id = ?", transactionID).
		Updates(map[string]interface{}{
			"status":        domain.StatusRejected,
			"error_message": errorMessage,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, transactionID)
	}
	return nil
}

func (r *DefaultTransactionRepository) GetByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", transactionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) ListByUser(ctx context.Context, userID string, filter domain.TransactionFilter) ([]*domain.Transaction, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	baseQuery := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("user_id = ?", userID)
	if filter.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filter.Status)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactionModels []models.TransactionModel
	err := baseQuery.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactionModels).Error
	if err != nil {
		return nil, 0, err
	}

	transactions := make([]*domain.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, mappers.ToDomainTransaction(&transactionModels[i]))
	}
	return transactions, total, nil
}
