package validation

import (
	"reflect"
	"regexp"
	"strings"

	"spendsense/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_key", validateMonthKey)
	_ = v.RegisterValidation("spending_category", validateSpendingCategory)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("budget_amount", validateBudgetAmount)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMonthKey validates the YYYY-MM month format
func validateMonthKey(fl validator.FieldLevel) bool {
	_, err := models.ParseMonthKey(fl.Field().String())
	return err == nil
}

// validateSpendingCategory validates that a category is one of the known set
func validateSpendingCategory(fl validator.FieldLevel) bool {
	return models.IsKnownCategory(fl.Field().String())
}

// validateTransactionType validates that transaction type is debit or credit
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateDecimalAmount validates that an amount parses as a non-zero decimal
// with at most 2 decimal places
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if amount.IsZero() {
		return false
	}
	return amount.Exponent() >= -2
}

// validateBudgetAmount validates that an amount parses as a non-negative
// decimal with at most 2 decimal places
func validateBudgetAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if amount.IsNegative() {
		return false
	}
	return amount.Exponent() >= -2
}

// validateCurrencyCode validates an ISO 4217 style alphabetic code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, fl.Field().String())
	return matched
}
