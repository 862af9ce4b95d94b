package repositories

import (
	"errors"
	"fmt"

	"spendsense/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// GetByUserID retrieves all budget overrides for a user
func (r *budgetRepository) GetByUserID(userID uuid.UUID) ([]models.CategoryBudget, error) {
	var budgets []models.CategoryBudget
	if err := r.db.Where("user_id = ?", userID).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByUserAndCategory retrieves one budget override
func (r *budgetRepository) GetByUserAndCategory(userID uuid.UUID, category string) (*models.CategoryBudget, error) {
	var budget models.CategoryBudget
	if err := r.db.Where("user_id = ? AND category = ?", userID, category).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// Upsert creates or replaces the budget override for a user/category pair
func (r *budgetRepository) Upsert(budget *models.CategoryBudget) error {
	if err := budget.Validate(); err != nil {
		return err
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_budget", "updated_at"}),
	}).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// Delete removes a budget override, returning ErrBudgetNotFound when absent
func (r *budgetRepository) Delete(userID uuid.UUID, category string) error {
	result := r.db.Where("user_id = ? AND category = ?", userID, category).
		Delete(&models.CategoryBudget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
