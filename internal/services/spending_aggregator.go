package services

import (
	"sort"
	"time"

	"spendsense/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// AggregatorOptions configures the spending aggregator.
type AggregatorOptions struct {
	// Now supplies the current time; defaults to time.Now. Injected so the
	// partial-month comparison is deterministic under test.
	Now func() time.Time

	// PadCurrentSeries controls the shape of a partial current-month series:
	// when true the cumulative array is zero-padded out to the full month
	// length, when false it stops at today's day-of-month.
	PadCurrentSeries bool
}

type spendingAggregator struct {
	now              func() time.Time
	padCurrentSeries bool
}

// NewSpendingAggregator creates a new SpendingAggregatorInterface instance
func NewSpendingAggregator(opts AggregatorOptions) SpendingAggregatorInterface {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &spendingAggregator{
		now:              now,
		padCurrentSeries: opts.PadCurrentSeries,
	}
}

// ComputeMonthlyTotals sums expense magnitudes per category for one month.
// Transactions without a booking date, outside the month, or that are not
// outflows are silently excluded.
func (a *spendingAggregator) ComputeMonthlyTotals(transactions []models.Transaction, month models.MonthKey) models.MonthlyTotals {
	totals := models.MonthlyTotals{
		Month:      month,
		ByCategory: make(map[string]decimal.Decimal),
		TotalSpent: decimal.Zero,
	}

	for i := range transactions {
		txn := &transactions[i]

		key, ok := txn.MonthKey()
		if !ok || key != month {
			continue
		}

		if !txn.IsExpense() {
			continue
		}

		category := txn.Category
		if category == "" {
			category = models.CategoryOther
		}

		magnitude := txn.ExpenseMagnitude()
		totals.ByCategory[category] = totals.ByCategory[category].Add(magnitude)
		totals.TotalSpent = totals.TotalSpent.Add(magnitude)
	}

	return totals
}

// ComputeBudgetSummary combines monthly totals with per-category ceilings.
// A zero or absent budget reads as 0% spent rather than a division error,
// and LeftToSpend goes negative on overspend instead of signalling failure.
func (a *spendingAggregator) ComputeBudgetSummary(totals models.MonthlyTotals, budgets map[string]decimal.Decimal, totalBudget decimal.Decimal) models.BudgetSummary {
	categories := unionCategories(totals.ByCategory, budgets)

	summary := models.BudgetSummary{
		Month:       totals.Month,
		Categories:  make([]models.CategoryBudgetProgress, 0, len(categories)),
		TotalBudget: totalBudget,
		TotalSpent:  totals.TotalSpent,
	}

	for _, category := range categories {
		spent := totals.ByCategory[category]
		budget := budgets[category]

		summary.Categories = append(summary.Categories, models.CategoryBudgetProgress{
			Category:   category,
			Spent:      spent,
			Budget:     budget,
			Remaining:  budget.Sub(spent),
			Percentage: spentPercentage(spent, budget),
			OverBudget: spent.GreaterThan(budget),
		})
	}

	summary.SpentPercentage = spentPercentage(totals.TotalSpent, totalBudget)
	summary.OverBudget = totals.TotalSpent.GreaterThan(totalBudget)
	summary.LeftToSpend = totalBudget.Sub(totals.TotalSpent)

	return summary
}

// ComputeDailyComparison builds the aligned cumulative series for the target
// month and its predecessor. Both output slices are positionally zippable:
// index i is day i+1 of the target month.
func (a *spendingAggregator) ComputeDailyComparison(transactions []models.Transaction, month models.MonthKey) models.DailyComparison {
	days := month.Days()
	previous := month.Previous()

	currentDaily := bucketDailyExpenses(transactions, month)
	previousDaily := bucketDailyExpenses(transactions, previous)

	// Fair partial-month comparison: a month still in progress only
	// accumulates through today so it lines up against an equally-partial
	// slice of the prior month.
	currentDays := days
	if today := a.now().UTC(); month.Contains(today) {
		currentDays = today.Day()
	}

	current := cumulativeSeries(currentDaily, currentDays)
	if a.padCurrentSeries {
		for day := currentDays; day < days; day++ {
			current = append(current, decimal.Zero)
		}
	}

	return models.DailyComparison{
		Month:       month,
		Days:        days,
		CurrentDays: currentDays,
		Current:     current,
		Previous:    alignPreviousSeries(cumulativeSeries(previousDaily, previous.Days()), days),
	}
}

// BuildDayLabels derives the sparse chart axis labels: day 1, the midpoint,
// today when the month is in progress, and the last day. Every other
// position is an empty string.
func (a *spendingAggregator) BuildDayLabels(month models.MonthKey) []string {
	days := month.Days()
	labels := make([]string, days)

	labels[0] = month.Label(1)
	labels[days-1] = month.Label(days)

	midpoint := (days + 1) / 2
	labels[midpoint-1] = month.Label(midpoint)

	if today := a.now().UTC(); month.Contains(today) {
		labels[today.Day()-1] = month.Label(today.Day())
	}

	return labels
}

// bucketDailyExpenses totals expense magnitudes by day-of-month for one month.
func bucketDailyExpenses(transactions []models.Transaction, month models.MonthKey) map[int]decimal.Decimal {
	daily := make(map[int]decimal.Decimal)

	for i := range transactions {
		txn := &transactions[i]

		key, ok := txn.MonthKey()
		if !ok || key != month {
			continue
		}

		if !txn.IsExpense() {
			continue
		}

		day := txn.BookedAt.UTC().Day()
		daily[day] = daily[day].Add(txn.ExpenseMagnitude())
	}

	return daily
}

// cumulativeSeries walks days 1..limit accumulating a running sum. The result
// is monotonically non-decreasing and every element is non-negative.
func cumulativeSeries(daily map[int]decimal.Decimal, limit int) []decimal.Decimal {
	series := make([]decimal.Decimal, 0, limit)
	running := decimal.Zero

	for day := 1; day <= limit; day++ {
		running = running.Add(daily[day])
		series = append(series, running)
	}

	return series
}

// alignPreviousSeries reshapes the previous month's full cumulative series to
// the target month's day count. A longer previous month is truncated; a
// shorter one carries its final total flat, since nothing is spent after the
// month ends.
func alignPreviousSeries(series []decimal.Decimal, days int) []decimal.Decimal {
	if len(series) >= days {
		return series[:days]
	}

	final := decimal.Zero
	if len(series) > 0 {
		final = series[len(series)-1]
	}

	aligned := make([]decimal.Decimal, 0, days)
	aligned = append(aligned, series...)
	for len(aligned) < days {
		aligned = append(aligned, final)
	}
	return aligned
}

func spentPercentage(spent, budget decimal.Decimal) int {
	if !budget.IsPositive() {
		return 0
	}

	percentage := spent.Div(budget).Mul(oneHundred).Round(0).IntPart()
	if percentage > 100 {
		return 100
	}
	if percentage < 0 {
		return 0
	}
	return int(percentage)
}

func unionCategories(totals map[string]decimal.Decimal, budgets map[string]decimal.Decimal) []string {
	seen := make(map[string]struct{}, len(totals)+len(budgets))
	for category := range totals {
		seen[category] = struct{}{}
	}
	for category := range budgets {
		seen[category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
