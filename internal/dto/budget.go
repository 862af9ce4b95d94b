package dto

import (
	"time"

	"spendsense/internal/models"
)

// SetBudgetRequest represents the request to set a category budget override
type SetBudgetRequest struct {
	MonthlyBudget string `json:"monthly_budget" validate:"required,budget_amount"`
}

// BudgetResponse represents one stored budget override
type BudgetResponse struct {
	Category      string    `json:"category"`
	MonthlyBudget string    `json:"monthly_budget"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewBudgetResponse converts a model to its API representation
func NewBudgetResponse(budget *models.CategoryBudget) BudgetResponse {
	return BudgetResponse{
		Category:      budget.Category,
		MonthlyBudget: budget.MonthlyBudget.String(),
		UpdatedAt:     budget.UpdatedAt,
	}
}

// ListBudgetsResponse represents the response for listing budget overrides
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// CategoryResponse describes one spending category for client pickers
type CategoryResponse struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ListCategoriesResponse represents the known category set
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
