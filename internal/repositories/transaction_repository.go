package repositories

import (
	"errors"
	"fmt"
	"time"

	"spendsense/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a single transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch persists a batch of transactions atomically
func (r *transactionRepository) CreateBatch(transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, transaction := range transactions {
			if err := tx.Create(transaction).Error; err != nil {
				return fmt.Errorf("failed to create transaction in batch: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByUserID retrieves a user's transactions with pagination, most recent
// booking dates first. Undated transactions sort last.
func (r *transactionRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("booked_at DESC NULLS LAST").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByUserAndDateRange retrieves a user's transactions booked within a date
// range, oldest first. Transactions without a booking date are excluded.
func (r *transactionRepository) GetByUserAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND booked_at BETWEEN ? AND ?", userID, startDate, endDate).
		Order("booked_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetByUserAndCategory retrieves a user's transactions for one category
func (r *transactionRepository) GetByUserAndCategory(userID uuid.UUID, category string, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND category = ?", userID, category)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions by category: %w", err)
	}

	if err := query.
		Offset(offset).Limit(limit).
		Order("booked_at DESC NULLS LAST").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions by category: %w", err)
	}

	return transactions, total, nil
}

// GetCategorySummary aggregates a user's expenses per category over a date
// range. Only outflows count: amounts are stored signed, so the filter is on
// the sign and the sums are negated back to positive magnitudes.
func (r *transactionRepository) GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			category,
			COUNT(*) as transaction_count,
			-SUM(amount) as total_spent,
			-AVG(amount) as average_spent
		FROM transactions
		WHERE user_id = ?
			AND booked_at BETWEEN ? AND ?
			AND amount < 0
		GROUP BY category
		ORDER BY total_spent DESC
	`

	if err := r.db.Raw(query, userID, startDate, endDate).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return summaries, nil
}

// DistinctCategories returns the categories a user spent in over a date range
func (r *transactionRepository) DistinctCategories(userID uuid.UUID, startDate, endDate time.Time) ([]string, error) {
	var categories []string

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND booked_at BETWEEN ? AND ? AND amount < 0", userID, startDate, endDate).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct categories: %w", err)
	}

	return categories, nil
}
