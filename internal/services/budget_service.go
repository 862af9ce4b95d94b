package services

import (
	"errors"
	"fmt"
	"log/slog"

	"spendsense/internal/config"
	"spendsense/internal/models"
	"spendsense/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownBudgetCategory = errors.New("unknown budget category")
	ErrNegativeBudget        = errors.New("budget amount must be non-negative")
)

type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	defaults   config.BudgetConfig
	metrics    MetricsRecorderInterface
}

// NewBudgetService creates a new BudgetServiceInterface instance
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	defaults config.BudgetConfig,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
		defaults:   defaults,
		metrics:    metrics,
	}
}

// ResolveBudgets returns the effective monthly ceiling for each category.
// Precedence: stored per-user override, then an even split of the main budget
// when that mode is enabled, then the per-category default (with the lower
// OTHER default for the catch-all bucket).
func (s *budgetService) ResolveBudgets(userID uuid.UUID, categories []string) (map[string]decimal.Decimal, error) {
	overrides, err := s.fetchOverrides(userID)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]decimal.Decimal, len(categories))

	var evenSplit decimal.Decimal
	if s.defaults.SplitMainBudget && len(categories) > 0 {
		evenSplit = s.defaults.MainBudget.Div(decimal.NewFromInt(int64(len(categories)))).Round(2)
	}

	for _, category := range categories {
		if override, ok := overrides[category]; ok {
			resolved[category] = override
			continue
		}

		switch {
		case s.defaults.SplitMainBudget:
			resolved[category] = evenSplit
		case category == models.CategoryOther:
			resolved[category] = s.defaults.OtherCategoryBudget
		default:
			resolved[category] = s.defaults.DefaultCategoryBudget
		}
	}

	return resolved, nil
}

// TotalBudget sums the effective ceilings across the given categories
func (s *budgetService) TotalBudget(userID uuid.UUID, categories []string) (decimal.Decimal, error) {
	resolved, err := s.ResolveBudgets(userID, categories)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, budget := range resolved {
		total = total.Add(budget)
	}
	return total, nil
}

// ListBudgets returns every stored override for a user
func (s *budgetService) ListBudgets(userID uuid.UUID) ([]models.CategoryBudget, error) {
	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to list budgets",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// SetBudget creates or replaces one budget override
func (s *budgetService) SetBudget(userID uuid.UUID, category string, monthly decimal.Decimal) (*models.CategoryBudget, error) {
	if !models.IsKnownCategory(category) {
		return nil, ErrUnknownBudgetCategory
	}

	if monthly.IsNegative() {
		return nil, ErrNegativeBudget
	}

	budget := &models.CategoryBudget{
		UserID:        userID,
		Category:      category,
		MonthlyBudget: monthly,
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		slog.Error("failed to set budget",
			"user_id", userID,
			"category", category,
			"error", err)
		return nil, fmt.Errorf("failed to set budget: %w", err)
	}

	slog.Info("budget override set",
		"user_id", userID,
		"category", category,
		"monthly_budget", monthly.String())

	s.recordOverrideCount(userID)

	return budget, nil
}

// RemoveBudget deletes an override, restoring the default for the category
func (s *budgetService) RemoveBudget(userID uuid.UUID, category string) error {
	if err := s.budgetRepo.Delete(userID, category); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return err
		}
		slog.Error("failed to remove budget",
			"user_id", userID,
			"category", category,
			"error", err)
		return fmt.Errorf("failed to remove budget: %w", err)
	}

	slog.Info("budget override removed",
		"user_id", userID,
		"category", category)

	s.recordOverrideCount(userID)

	return nil
}

func (s *budgetService) fetchOverrides(userID uuid.UUID) (map[string]decimal.Decimal, error) {
	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to fetch budget overrides",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch budget overrides: %w", err)
	}

	overrides := make(map[string]decimal.Decimal, len(budgets))
	for i := range budgets {
		overrides[budgets[i].Category] = budgets[i].MonthlyBudget
	}
	return overrides, nil
}

func (s *budgetService) recordOverrideCount(userID uuid.UUID) {
	if s.metrics == nil {
		return
	}

	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		return
	}
	s.metrics.SetBudgetOverrides(float64(len(budgets)))
}
