package domain

import "context"

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	MarkRejected(ctx context.Context, transactionID, errorMessage string) error
	GetByID(ctx context.Context, transactionID string) (*Transaction, error)
	ListByUser(ctx context.Context, userID string, filter TransactionFilter) ([]*Transaction, int64, error)
}
