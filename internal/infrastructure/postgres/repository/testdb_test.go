package repository

import (
	"testing"

	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.WalletBalanceModel{}, &models.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}
