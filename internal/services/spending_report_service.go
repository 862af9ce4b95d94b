package services

import (
	"fmt"
	"log/slog"
	"time"

	"spendsense/internal/models"
	"spendsense/internal/repositories"

	"github.com/google/uuid"
)

type spendingReportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetService   BudgetServiceInterface
	aggregator      SpendingAggregatorInterface
	metrics         MetricsRecorderInterface
}

// NewSpendingReportService creates a new SpendingReportServiceInterface instance
func NewSpendingReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetService BudgetServiceInterface,
	aggregator SpendingAggregatorInterface,
	metrics MetricsRecorderInterface,
) SpendingReportServiceInterface {
	return &spendingReportService{
		transactionRepo: transactionRepo,
		budgetService:   budgetService,
		aggregator:      aggregator,
		metrics:         metrics,
	}
}

// GetMonthlyReport builds the per-category totals and budget summary for one
// month. The aggregation itself is pure; this layer only fetches inputs and
// resolves the budget configuration, keeping storage out of the computation.
func (s *spendingReportService) GetMonthlyReport(userID uuid.UUID, month models.MonthKey) (*models.MonthlySpendingReport, error) {
	transactions, err := s.fetchMonthTransactions(userID, month, month)
	if err != nil {
		return nil, err
	}

	totals := s.aggregator.ComputeMonthlyTotals(transactions, month)

	categories := budgetCategories(totals)
	budgets, err := s.budgetService.ResolveBudgets(userID, categories)
	if err != nil {
		return nil, err
	}

	totalBudget, err := s.budgetService.TotalBudget(userID, categories)
	if err != nil {
		return nil, err
	}

	report := &models.MonthlySpendingReport{
		Month:       month,
		Totals:      totals,
		Budget:      s.aggregator.ComputeBudgetSummary(totals, budgets, totalBudget),
		Currency:    models.DefaultCurrency,
		GeneratedAt: time.Now().UTC(),
	}

	if s.metrics != nil {
		s.metrics.RecordReportGenerated("monthly")
	}

	slog.Info("monthly spending report generated",
		"user_id", userID,
		"month", month.String(),
		"total_spent", totals.TotalSpent.String(),
		"categories", len(totals.ByCategory))

	return report, nil
}

// GetDailyComparison builds the dual-month cumulative chart payload plus the
// sparse axis labels.
func (s *spendingReportService) GetDailyComparison(userID uuid.UUID, month models.MonthKey) (*models.DailyComparison, []string, error) {
	// One fetch spans both months so the aggregator can partition them.
	transactions, err := s.fetchMonthTransactions(userID, month.Previous(), month)
	if err != nil {
		return nil, nil, err
	}

	comparison := s.aggregator.ComputeDailyComparison(transactions, month)
	labels := s.aggregator.BuildDayLabels(month)

	if s.metrics != nil {
		s.metrics.RecordReportGenerated("daily_comparison")
	}

	slog.Info("daily comparison generated",
		"user_id", userID,
		"month", month.String(),
		"days", comparison.Days,
		"current_days", comparison.CurrentDays)

	return &comparison, labels, nil
}

// GetCategorySummary returns the database-side per-category expense rollup
// (count, total, average) for one month.
func (s *spendingReportService) GetCategorySummary(userID uuid.UUID, month models.MonthKey) ([]models.CategorySummary, error) {
	summaries, err := s.transactionRepo.GetCategorySummary(userID, month.Start(), month.End())
	if err != nil {
		slog.Error("failed to fetch category summary",
			"user_id", userID,
			"month", month.String(),
			"error", err)
		return nil, fmt.Errorf("failed to fetch category summary: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordReportGenerated("category_summary")
	}

	return summaries, nil
}

func (s *spendingReportService) fetchMonthTransactions(userID uuid.UUID, from, to models.MonthKey) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetByUserAndDateRange(userID, from.Start(), to.End())
	if err != nil {
		slog.Error("failed to fetch transactions for report",
			"user_id", userID,
			"from", from.String(),
			"to", to.String(),
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return transactions, nil
}

// budgetCategories returns the categories a budget position is reported for:
// every category spent in this month plus the built-in set, so unspent
// budgeted categories still show up with 0%.
func budgetCategories(totals models.MonthlyTotals) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)

	for _, info := range models.DefaultCategories() {
		seen[info.Name] = struct{}{}
		categories = append(categories, info.Name)
	}

	for category := range totals.ByCategory {
		if _, ok := seen[category]; !ok {
			categories = append(categories, category)
		}
	}

	return categories
}
