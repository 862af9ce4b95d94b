package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotals is the per-category expense breakdown for one month.
type MonthlyTotals struct {
	Month      MonthKey                   `json:"month"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	TotalSpent decimal.Decimal            `json:"total_spent"`
}

// CategoryBudgetProgress is the budget-vs-actual position of one category.
// Percentage is clamped to [0,100]; a zero budget always reads as 0%, never
// as a division error.
type CategoryBudgetProgress struct {
	Category   string          `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Budget     decimal.Decimal `json:"budget"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage int             `json:"percentage"`
	OverBudget bool            `json:"over_budget"`
}

// BudgetSummary aggregates the per-category positions for one month.
// LeftToSpend may be negative: that denotes overspend, not an error state.
type BudgetSummary struct {
	Month           MonthKey                 `json:"month"`
	Categories      []CategoryBudgetProgress `json:"categories"`
	TotalBudget     decimal.Decimal          `json:"total_budget"`
	TotalSpent      decimal.Decimal          `json:"total_spent"`
	SpentPercentage int                      `json:"spent_percentage"`
	OverBudget      bool                     `json:"over_budget"`
	LeftToSpend     decimal.Decimal          `json:"left_to_spend"`
}

// DailyComparison holds the aligned cumulative daily spending series for a
// target month and the month immediately preceding it. Both series share the
// target month's day count so chart consumers can zip them positionally.
// CurrentDays is the number of populated leading entries in Current: the full
// month for a past month, or today's day-of-month when the target month is
// still in progress (fair partial-month comparison).
type DailyComparison struct {
	Month       MonthKey          `json:"month"`
	Days        int               `json:"days"`
	CurrentDays int               `json:"current_days"`
	Current     []decimal.Decimal `json:"current"`
	Previous    []decimal.Decimal `json:"previous"`
}

// MonthlySpendingReport is the full analytics payload for one month.
type MonthlySpendingReport struct {
	Month       MonthKey      `json:"month"`
	Totals      MonthlyTotals `json:"totals"`
	Budget      BudgetSummary `json:"budget"`
	Currency    string        `json:"currency"`
	GeneratedAt time.Time     `json:"generated_at"`
}
