package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated expense data for one category over a
// date range, as computed by the database rather than the pure aggregator.
// Exposed on the transaction listing API for quick per-category drill-downs.
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	AverageSpent     decimal.Decimal `json:"average_spent"`
}
