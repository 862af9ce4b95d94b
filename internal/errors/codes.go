package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthForbidden          ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound       ErrorCode = "TRANSACTION_001"
	TransactionInvalidType    ErrorCode = "TRANSACTION_002"
	TransactionEmptyBatch     ErrorCode = "TRANSACTION_003"
	TransactionBatchTooLarge  ErrorCode = "TRANSACTION_004"
	TransactionInvalidPayload ErrorCode = "TRANSACTION_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetUnknownCategory ErrorCode = "BUDGET_001"
	BudgetNegativeAmount  ErrorCode = "BUDGET_002"
	BudgetNotFound        ErrorCode = "BUDGET_003"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidMonth ErrorCode = "REPORT_001"
	ReportUserNotFound ErrorCode = "REPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthForbidden:          "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidMonth:  "Month must be in YYYY-MM format",
	ValidationInvalidAmount: "Invalid amount",
	ValidationInvalidDate:   "Invalid date format",

	TransactionNotFound:       "Transaction not found",
	TransactionInvalidType:    "Transaction type must be debit or credit",
	TransactionEmptyBatch:     "Transaction batch is empty",
	TransactionBatchTooLarge:  "Transaction batch exceeds the maximum size",
	TransactionInvalidPayload: "Transaction payload failed validation",

	BudgetUnknownCategory: "Unknown budget category",
	BudgetNegativeAmount:  "Budget amount must be non-negative",
	BudgetNotFound:        "Budget not found",

	ReportInvalidMonth: "Report month must be in YYYY-MM format",
	ReportUserNotFound: "User not found",

	SystemInternalError:     "An internal error occurred",
	SystemDatabaseError:     "A database error occurred",
	SystemRateLimitExceeded: "Too many requests, please try again later",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unexpected error occurred"
}
