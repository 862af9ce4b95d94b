package dto

import (
	"sort"
	"time"

	"spendsense/internal/models"
)

// MonthParam binds the month path or query parameter
type MonthParam struct {
	Month string `query:"month" validate:"omitempty,month_key"`
}

// CategoryTotalResponse is one row of the per-category breakdown
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Spent    string `json:"spent"`
}

// CategoryBudgetResponse is one category's budget-vs-actual position
type CategoryBudgetResponse struct {
	Category   string `json:"category"`
	Spent      string `json:"spent"`
	Budget     string `json:"budget"`
	Remaining  string `json:"remaining"`
	Percentage int    `json:"percentage"`
	OverBudget bool   `json:"over_budget"`
}

// BudgetSummaryResponse is the whole-month budget position
type BudgetSummaryResponse struct {
	Categories      []CategoryBudgetResponse `json:"categories"`
	TotalBudget     string                   `json:"total_budget"`
	TotalSpent      string                   `json:"total_spent"`
	SpentPercentage int                      `json:"spent_percentage"`
	OverBudget      bool                     `json:"over_budget"`
	LeftToSpend     string                   `json:"left_to_spend"`
}

// MonthlyReportResponse represents the monthly spending report
type MonthlyReportResponse struct {
	Month       string                  `json:"month"`
	Currency    string                  `json:"currency"`
	Totals      []CategoryTotalResponse `json:"totals"`
	TotalSpent  string                  `json:"total_spent"`
	Budget      BudgetSummaryResponse   `json:"budget"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// NewMonthlyReportResponse converts a report model to its API representation.
// The category breakdown is emitted largest spend first for direct rendering.
func NewMonthlyReportResponse(report *models.MonthlySpendingReport) MonthlyReportResponse {
	totals := make([]CategoryTotalResponse, 0, len(report.Totals.ByCategory))
	for category, spent := range report.Totals.ByCategory {
		totals = append(totals, CategoryTotalResponse{
			Category: category,
			Spent:    spent.String(),
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Spent == totals[j].Spent {
			return totals[i].Category < totals[j].Category
		}
		a := report.Totals.ByCategory[totals[i].Category]
		b := report.Totals.ByCategory[totals[j].Category]
		return a.GreaterThan(b)
	})

	categories := make([]CategoryBudgetResponse, 0, len(report.Budget.Categories))
	for _, progress := range report.Budget.Categories {
		categories = append(categories, CategoryBudgetResponse{
			Category:   progress.Category,
			Spent:      progress.Spent.String(),
			Budget:     progress.Budget.String(),
			Remaining:  progress.Remaining.String(),
			Percentage: progress.Percentage,
			OverBudget: progress.OverBudget,
		})
	}

	return MonthlyReportResponse{
		Month:      report.Month.String(),
		Currency:   report.Currency,
		Totals:     totals,
		TotalSpent: report.Totals.TotalSpent.String(),
		Budget: BudgetSummaryResponse{
			Categories:      categories,
			TotalBudget:     report.Budget.TotalBudget.String(),
			TotalSpent:      report.Budget.TotalSpent.String(),
			SpentPercentage: report.Budget.SpentPercentage,
			OverBudget:      report.Budget.OverBudget,
			LeftToSpend:     report.Budget.LeftToSpend.String(),
		},
		GeneratedAt: report.GeneratedAt,
	}
}

// DailyComparisonResponse is the dual-month cumulative chart payload. Labels
// is a sparse axis: it annotates a handful of days, not every series entry.
type DailyComparisonResponse struct {
	Month       string   `json:"month"`
	Days        int      `json:"days"`
	CurrentDays int      `json:"current_days"`
	Labels      []string `json:"labels"`
	Current     []string `json:"current"`
	Previous    []string `json:"previous"`
}

// NewDailyComparisonResponse converts comparison series to their API representation
func NewDailyComparisonResponse(comparison *models.DailyComparison, labels []string) DailyComparisonResponse {
	current := make([]string, len(comparison.Current))
	for i, value := range comparison.Current {
		current[i] = value.String()
	}

	previous := make([]string, len(comparison.Previous))
	for i, value := range comparison.Previous {
		previous[i] = value.String()
	}

	return DailyComparisonResponse{
		Month:       comparison.Month.String(),
		Days:        comparison.Days,
		CurrentDays: comparison.CurrentDays,
		Labels:      labels,
		Current:     current,
		Previous:    previous,
	}
}

// CategorySummaryLineResponse is one category's expense rollup
type CategorySummaryLineResponse struct {
	Category         string `json:"category"`
	TransactionCount int64  `json:"transaction_count"`
	TotalSpent       string `json:"total_spent"`
	AverageSpent     string `json:"average_spent"`
}

// CategorySummaryResponse is the per-category rollup for one month, largest
// spend first as the database emits it
type CategorySummaryResponse struct {
	Month      string                        `json:"month"`
	Categories []CategorySummaryLineResponse `json:"categories"`
}

// NewCategorySummaryResponse converts summary rows to their API representation
func NewCategorySummaryResponse(month models.MonthKey, summaries []models.CategorySummary) CategorySummaryResponse {
	lines := make([]CategorySummaryLineResponse, 0, len(summaries))
	for _, summary := range summaries {
		lines = append(lines, CategorySummaryLineResponse{
			Category:         summary.Category,
			TransactionCount: summary.TransactionCount,
			TotalSpent:       summary.TotalSpent.String(),
			AverageSpent:     summary.AverageSpent.String(),
		})
	}

	return CategorySummaryResponse{
		Month:      month.String(),
		Categories: lines,
	}
}
