package handlers

import (
	stderrors "errors"
	"net/http"

	"spendsense/internal/dto"
	"spendsense/internal/errors"
	"spendsense/internal/models"
	"spendsense/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction ingest and listing requests
type TransactionHandler struct {
	ingestService services.TransactionIngestServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ingestService services.TransactionIngestServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		ingestService: ingestService,
	}
}

// IngestTransactions ingests a batch of feed entries for the authenticated user
// @Summary Ingest a transaction batch
// @Description Normalize, categorize, and persist a batch of raw transaction feed entries
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.IngestBatchRequest true "Transaction batch"
// @Success 201 {object} dto.IngestBatchResponse "Batch ingested"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Invalid transaction in batch"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) IngestTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.IngestBatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions := make([]*models.Transaction, len(req.Transactions))
	for i := range req.Transactions {
		transactions[i] = req.Transactions[i].ToModel()
	}

	ingested, err := h.ingestService.IngestBatch(userID, transactions)
	if err != nil {
		switch {
		case err == services.ErrEmptyBatch:
			return SendError(c, errors.TransactionEmptyBatch)
		case err == services.ErrBatchTooLarge:
			return SendError(c, errors.TransactionBatchTooLarge)
		case stderrors.Is(err, services.ErrInvalidTransaction):
			return SendError(c, errors.TransactionInvalidPayload, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	responses := make([]dto.TransactionResponse, len(ingested))
	for i, txn := range ingested {
		responses[i] = dto.NewTransactionResponse(txn)
	}

	return c.JSON(http.StatusCreated, dto.IngestBatchResponse{
		Ingested:     len(responses),
		Transactions: responses,
	})
}

// ListTransactions lists the authenticated user's transactions
// @Summary List transactions
// @Description Retrieve the user's transactions with pagination and an optional category filter
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param category query string false "Category filter"
// @Param month query string false "Booking month filter in YYYY-MM format"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.ListTransactionsResponse "Transaction page"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	category := c.QueryParam("category")
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var month *models.MonthKey
	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := models.ParseMonthKey(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidMonth, errors.WithDetails("Month must use the YYYY-MM format"))
		}
		month = &parsed
	}

	transactions, total, err := h.ingestService.ListTransactions(userID, category, month, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = dto.NewTransactionResponse(&transactions[i])
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: responses,
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// ListUsedCategories returns the categories spent in during one month
// @Summary List used categories
// @Description Retrieve the categories the authenticated user spent in during a month, for list filters
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.UsedCategoriesResponse "Used categories"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid month format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/categories [get]
func (h *TransactionHandler) ListUsedCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, err := monthFromRequest(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth, errors.WithDetails("Month must use the YYYY-MM format"))
	}

	categories, err := h.ingestService.UsedCategories(userID, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UsedCategoriesResponse{
		Month:      month.String(),
		Categories: categories,
	})
}
