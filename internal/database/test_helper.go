package database

import (
	"testing"
	"time"

	"spendsense/internal/config"
	"spendsense/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestExpense inserts a normalized outflow for a user on a given day.
func CreateTestExpense(t *testing.T, db *DB, userID uuid.UUID, category string, amount float64, bookedAt time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:          userID,
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: models.TransactionTypeDebit,
		Category:        category,
		Description:     "test expense",
		BookedAt:        &bookedAt,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return txn
}

// CreateTestIncome inserts an inflow for a user on a given day.
func CreateTestIncome(t *testing.T, db *DB, userID uuid.UUID, amount float64, bookedAt time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:          userID,
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: models.TransactionTypeCredit,
		Category:        models.CategoryIncome,
		Description:     "test income",
		BookedAt:        &bookedAt,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}

	return txn
}

// CreateTestBudget inserts a budget override for a user/category pair.
func CreateTestBudget(t *testing.T, db *DB, userID uuid.UUID, category string, monthly float64) *models.CategoryBudget {
	t.Helper()

	budget := &models.CategoryBudget{
		UserID:        userID,
		Category:      category,
		MonthlyBudget: decimal.NewFromFloat(monthly),
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}
