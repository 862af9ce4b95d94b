package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		input      Transaction
		wantAmount string
		wantType   string
	}{
		{
			name:       "explicit debit overrides positive amount",
			input:      Transaction{Amount: decimal.NewFromFloat(50.00), TransactionType: TransactionTypeDebit},
			wantAmount: "-50",
			wantType:   TransactionTypeDebit,
		},
		{
			name:       "explicit debit keeps negative amount",
			input:      Transaction{Amount: decimal.NewFromFloat(-50.00), TransactionType: TransactionTypeDebit},
			wantAmount: "-50",
			wantType:   TransactionTypeDebit,
		},
		{
			name:       "explicit credit overrides negative amount",
			input:      Transaction{Amount: decimal.NewFromFloat(-120.50), TransactionType: TransactionTypeCredit},
			wantAmount: "120.5",
			wantType:   TransactionTypeCredit,
		},
		{
			name:       "no type derives debit from negative sign",
			input:      Transaction{Amount: decimal.NewFromFloat(-9.99)},
			wantAmount: "-9.99",
			wantType:   TransactionTypeDebit,
		},
		{
			name:       "no type derives credit from positive sign",
			input:      Transaction{Amount: decimal.NewFromFloat(1500)},
			wantAmount: "1500",
			wantType:   TransactionTypeCredit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := tt.input
			txn.Normalize()

			assert.Equal(t, tt.wantAmount, txn.Amount.String())
			assert.Equal(t, tt.wantType, txn.TransactionType)
		})
	}
}

func TestTransaction_NormalizeDefaults(t *testing.T) {
	txn := Transaction{Amount: decimal.NewFromFloat(-10)}
	txn.Normalize()

	assert.Equal(t, CategoryOther, txn.Category)
	assert.Equal(t, DefaultCurrency, txn.Currency)
}

func TestTransaction_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:          userID,
				Amount:          decimal.NewFromFloat(-25.00),
				TransactionType: TransactionTypeDebit,
				Category:        CategoryGroceries,
			},
		},
		{
			name: "missing user",
			transaction: Transaction{
				Amount:          decimal.NewFromFloat(-25.00),
				TransactionType: TransactionTypeDebit,
			},
			wantErr: ErrMissingUserID,
		},
		{
			name: "invalid type",
			transaction: Transaction{
				UserID:          userID,
				Amount:          decimal.NewFromFloat(-25.00),
				TransactionType: "transfer",
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:          userID,
				Amount:          decimal.Zero,
				TransactionType: TransactionTypeDebit,
			},
			wantErr: ErrZeroAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransaction_ExpenseMagnitude(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromFloat(-42.50)}
	income := Transaction{Amount: decimal.NewFromFloat(1000)}

	assert.True(t, expense.IsExpense())
	assert.Equal(t, "42.5", expense.ExpenseMagnitude().String())

	assert.False(t, income.IsExpense())
	assert.True(t, income.ExpenseMagnitude().IsZero())
}

func TestTransaction_MonthKey(t *testing.T) {
	booked := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	txn := Transaction{BookedAt: &booked}

	key, ok := txn.MonthKey()
	require.True(t, ok)
	assert.Equal(t, MonthKey("2024-03"), key)

	undated := Transaction{}
	_, ok = undated.MonthKey()
	assert.False(t, ok)
}
