package services

import (
	"spendsense/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingAggregatorInterface is the pure computation core of the analytics
// API. Every method is a total function: degenerate input (missing dates,
// unknown categories, zero budgets, empty slices) is normalized to zeros and
// defaults, never an error.
type SpendingAggregatorInterface interface {
	// ComputeMonthlyTotals sums expense magnitudes per category for one month.
	ComputeMonthlyTotals(transactions []models.Transaction, month models.MonthKey) models.MonthlyTotals

	// ComputeBudgetSummary combines monthly totals with per-category budget
	// ceilings into budget-vs-actual positions.
	ComputeBudgetSummary(totals models.MonthlyTotals, budgets map[string]decimal.Decimal, totalBudget decimal.Decimal) models.BudgetSummary

	// ComputeDailyComparison builds aligned cumulative daily series for the
	// target month and the month immediately preceding it.
	ComputeDailyComparison(transactions []models.Transaction, month models.MonthKey) models.DailyComparison

	// BuildDayLabels derives the sparse chart axis labels for a month.
	BuildDayLabels(month models.MonthKey) []string
}

// BudgetServiceInterface resolves and maintains per-category budgets
type BudgetServiceInterface interface {
	// ResolveBudgets returns the effective budget ceiling for each given
	// category, applying stored overrides first and configured defaults after.
	ResolveBudgets(userID uuid.UUID, categories []string) (map[string]decimal.Decimal, error)

	// TotalBudget returns the sum of the effective ceilings for the categories.
	TotalBudget(userID uuid.UUID, categories []string) (decimal.Decimal, error)

	// ListBudgets returns every stored override for a user.
	ListBudgets(userID uuid.UUID) ([]models.CategoryBudget, error)

	// SetBudget creates or replaces a budget override.
	SetBudget(userID uuid.UUID, category string, monthly decimal.Decimal) (*models.CategoryBudget, error)

	// RemoveBudget deletes an override, restoring the default for the category.
	RemoveBudget(userID uuid.UUID, category string) error
}

// SpendingReportServiceInterface produces the monthly analytics payloads
type SpendingReportServiceInterface interface {
	// GetMonthlyReport builds category totals plus the budget summary.
	GetMonthlyReport(userID uuid.UUID, month models.MonthKey) (*models.MonthlySpendingReport, error)

	// GetDailyComparison builds the dual-month cumulative chart payload.
	GetDailyComparison(userID uuid.UUID, month models.MonthKey) (*models.DailyComparison, []string, error)

	// GetCategorySummary returns per-category expense counts, totals, and
	// averages for one month, computed database-side.
	GetCategorySummary(userID uuid.UUID, month models.MonthKey) ([]models.CategorySummary, error)
}

// CategoryServiceInterface assigns spending categories to raw transactions
type CategoryServiceInterface interface {
	// CategorizeByMerchant categorizes from the merchant name.
	CategorizeByMerchant(merchantName string) (category string, matched bool)

	// CategorizeByDescription categorizes from the free-text description.
	CategorizeByDescription(description string) (category string, matched bool)

	// Categorize picks the best category for a transaction, falling back to
	// OTHER when nothing matches.
	Categorize(transaction *models.Transaction) string
}

// TransactionIngestServiceInterface accepts raw feed entries
type TransactionIngestServiceInterface interface {
	// IngestBatch normalizes, categorizes, and persists a batch of
	// transactions for one user. Returns the persisted records.
	IngestBatch(userID uuid.UUID, transactions []*models.Transaction) ([]*models.Transaction, error)

	// ListTransactions pages through a user's transactions, optionally
	// filtered by category and booking month.
	ListTransactions(userID uuid.UUID, category string, month *models.MonthKey, offset, limit int) ([]models.Transaction, int64, error)

	// UsedCategories returns the categories the user actually spent in
	// during one month, sorted, for building list filters.
	UsedCategories(userID uuid.UUID, month models.MonthKey) ([]string, error)
}

// TransactionGeneratorInterface generates realistic demo transaction data
type TransactionGeneratorInterface interface {
	GenerateMonthlySpending(userID uuid.UUID, month models.MonthKey, count int) []*models.Transaction
	GenerateSalary(userID uuid.UUID, month models.MonthKey) *models.Transaction
}

// MetricsRecorderInterface abstracts the metrics backend
type MetricsRecorderInterface interface {
	RecordReportGenerated(reportType string)
	RecordIngestedTransactions(count int)
	RecordIngestRejected()
	SetBudgetOverrides(count float64)
}
