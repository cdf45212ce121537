package domain

import "context"

type BalanceRepository interface {
	GetBalance(ctx context.Context, userID string, currency Currency) (*WalletBalance, error)
	ListByUser(ctx context.Context, userID string) ([]*WalletBalance, error)
	// SeedBalances provisions one row per supported currency with the
	// domain starting amounts. Idempotent per (user, currency).
	SeedBalances(ctx context.Context, userID string) error
}
