package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	DefaultCurrency = "GBP"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroAmount             = errors.New("transaction amount must be non-zero")
	ErrMissingUserID          = errors.New("user ID is required")
)

// Transaction is a single bank-fed ledger entry. Amount is stored in the
// normalized signed convention: negative for outflows (debits), positive for
// inflows (credits). When the upstream feed supplies an explicit
// TransactionType, that field is authoritative and Normalize derives the sign
// from it; otherwise the sign of the raw amount is trusted as-is.
//
// BookedAt is nullable on purpose: feeds occasionally deliver entries without
// a booking date, and those are excluded from every aggregation rather than
// rejected at ingestion.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(20)" json:"transaction_type,omitempty"`
	Category        string          `gorm:"type:varchar(50);not null;default:'OTHER';index" json:"category"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'GBP'" json:"currency"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	MerchantName    string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	BookedAt        *time.Time      `gorm:"index" json:"booked_at,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.Normalize()

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Normalize applies the canonical sign convention and field defaults.
// Invariant after Normalize: Amount < 0 iff the transaction is an expense.
func (t *Transaction) Normalize() {
	switch t.TransactionType {
	case TransactionTypeDebit:
		t.Amount = t.Amount.Abs().Neg()
	case TransactionTypeCredit:
		t.Amount = t.Amount.Abs()
	default:
		// No explicit type: the raw sign is authoritative. Derive the type
		// so downstream consumers always see both fields agree.
		if t.Amount.IsNegative() {
			t.TransactionType = TransactionTypeDebit
		} else {
			t.TransactionType = TransactionTypeCredit
		}
	}

	if t.Category == "" {
		t.Category = CategoryOther
	}
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
}

// Validate checks the transaction fields after normalization.
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsZero() {
		return ErrZeroAmount
	}

	if len(t.Category) > 50 {
		return errors.New("category label too long")
	}

	return nil
}

// IsExpense reports whether the transaction is an outflow. Only valid after
// Normalize has run (which BeforeCreate guarantees for persisted rows).
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// ExpenseMagnitude returns the absolute value of an outflow amount, or zero
// for inflows.
func (t *Transaction) ExpenseMagnitude() decimal.Decimal {
	if !t.IsExpense() {
		return decimal.Zero
	}
	return t.Amount.Abs()
}

// MonthKey returns the calendar month the transaction belongs to, or false
// when the booking date is absent.
func (t *Transaction) MonthKey() (MonthKey, bool) {
	if t.BookedAt == nil {
		return "", false
	}
	return NewMonthKey(t.BookedAt.UTC()), true
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}
