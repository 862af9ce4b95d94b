package repositories

import (
	"time"

	"spendsense/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines transaction persistence operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []*models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetByUserAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetByUserAndCategory(userID uuid.UUID, category string, offset, limit int) ([]models.Transaction, int64, error)
	GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error)
	DistinctCategories(userID uuid.UUID, startDate, endDate time.Time) ([]string, error)
}

// BudgetRepositoryInterface defines budget persistence operations
type BudgetRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) ([]models.CategoryBudget, error)
	GetByUserAndCategory(userID uuid.UUID, category string) (*models.CategoryBudget, error)
	Upsert(budget *models.CategoryBudget) error
	Delete(userID uuid.UUID, category string) error
}
