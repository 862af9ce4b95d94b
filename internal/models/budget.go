package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBudgetAmount = errors.New("budget amount must be non-negative")
	ErrUnknownCategory     = errors.New("unknown budget category")
)

// CategoryBudget is a persisted per-user monthly budget ceiling for one
// category. Categories without a stored row fall back to the configured
// defaults (see services.BudgetService).
type CategoryBudget struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_category" json:"user_id"`
	Category      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budget_user_category" json:"category"`
	MonthlyBudget decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_budget"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CategoryBudget
func (b *CategoryBudget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for CategoryBudget
func (b *CategoryBudget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate checks the budget fields
func (b *CategoryBudget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if !IsKnownCategory(b.Category) {
		return ErrUnknownCategory
	}

	if b.MonthlyBudget.IsNegative() {
		return ErrInvalidBudgetAmount
	}

	return nil
}

// TableName returns the table name for CategoryBudget
func (b *CategoryBudget) TableName() string {
	return "category_budgets"
}
