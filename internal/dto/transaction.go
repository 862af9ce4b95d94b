package dto

import (
	"time"

	"spendsense/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngestTransactionRequest is one feed entry in an ingest batch. Amount is a
// decimal string; its sign may disagree with Type, in which case Type wins.
type IngestTransactionRequest struct {
	Amount       string     `json:"amount" validate:"required,decimal_amount"`
	Type         string     `json:"type" validate:"required,transaction_type"`
	Category     string     `json:"category,omitempty" validate:"omitempty,spending_category"`
	Currency     string     `json:"currency,omitempty" validate:"omitempty,currency_code"`
	Description  string     `json:"description,omitempty" validate:"max=255"`
	MerchantName string     `json:"merchant_name,omitempty" validate:"max=100"`
	BookedAt     *time.Time `json:"booked_at,omitempty"`
}

// IngestBatchRequest represents the request to ingest a batch of transactions
type IngestBatchRequest struct {
	Transactions []IngestTransactionRequest `json:"transactions" validate:"required,min=1,dive"`
}

// ToModel converts a feed entry into the persistence model. The amount has
// already passed validation, so parsing cannot fail here.
func (r *IngestTransactionRequest) ToModel() *models.Transaction {
	amount, _ := decimal.NewFromString(r.Amount)

	return &models.Transaction{
		Amount:          amount,
		TransactionType: r.Type,
		Category:        r.Category,
		Currency:        r.Currency,
		Description:     r.Description,
		MerchantName:    r.MerchantName,
		BookedAt:        r.BookedAt,
	}
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=0,max=100"`
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	Category string `query:"category" validate:"omitempty,spending_category"`
}

// TransactionResponse represents a persisted transaction
type TransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	Amount       string     `json:"amount"`
	Type         string     `json:"type"`
	Category     string     `json:"category"`
	Currency     string     `json:"currency"`
	Description  string     `json:"description,omitempty"`
	MerchantName string     `json:"merchant_name,omitempty"`
	BookedAt     *time.Time `json:"booked_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewTransactionResponse converts a model to its API representation
func NewTransactionResponse(txn *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID,
		Amount:       txn.Amount.String(),
		Type:         txn.TransactionType,
		Category:     txn.Category,
		Currency:     txn.Currency,
		Description:  txn.Description,
		MerchantName: txn.MerchantName,
		BookedAt:     txn.BookedAt,
		CreatedAt:    txn.CreatedAt,
	}
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// IngestBatchResponse represents the result of a batch ingest
type IngestBatchResponse struct {
	Ingested     int                   `json:"ingested"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// UsedCategoriesResponse lists the categories spent in during one month
type UsedCategoriesResponse struct {
	Month      string   `json:"month"`
	Categories []string `json:"categories"`
}
