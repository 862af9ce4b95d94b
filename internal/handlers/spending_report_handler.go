package handlers

import (
	"net/http"
	"time"

	"spendsense/internal/dto"
	"spendsense/internal/errors"
	"spendsense/internal/models"
	"spendsense/internal/services"

	"github.com/labstack/echo/v4"
)

// SpendingReportHandler handles spending analytics requests
type SpendingReportHandler struct {
	reportService services.SpendingReportServiceInterface
}

// NewSpendingReportHandler creates a new spending report handler
func NewSpendingReportHandler(reportService services.SpendingReportServiceInterface) *SpendingReportHandler {
	return &SpendingReportHandler{
		reportService: reportService,
	}
}

// GetMonthlyReport returns per-category totals and the budget summary
// @Summary Monthly spending report
// @Description Retrieve per-category spending totals and budget-vs-actual positions for one month
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.MonthlyReportResponse "Monthly report"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid month format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/monthly [get]
func (h *SpendingReportHandler) GetMonthlyReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, err := monthFromRequest(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth, errors.WithDetails("Month must use the YYYY-MM format"))
	}

	report, err := h.reportService.GetMonthlyReport(userID, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlyReportResponse(report))
}

// GetDailyComparison returns the dual-month cumulative daily series
// @Summary Daily spending comparison
// @Description Retrieve aligned cumulative daily spending series for a month and the month before it
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.DailyComparisonResponse "Comparison series"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid month format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/daily-comparison [get]
func (h *SpendingReportHandler) GetDailyComparison(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, err := monthFromRequest(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth, errors.WithDetails("Month must use the YYYY-MM format"))
	}

	comparison, labels, err := h.reportService.GetDailyComparison(userID, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDailyComparisonResponse(comparison, labels))
}

// GetCategorySummary returns the database-side per-category expense rollup
// @Summary Category summary
// @Description Retrieve per-category expense counts, totals, and averages for one month
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.CategorySummaryResponse "Category summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid month format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/category-summary [get]
func (h *SpendingReportHandler) GetCategorySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, err := monthFromRequest(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth, errors.WithDetails("Month must use the YYYY-MM format"))
	}

	summaries, err := h.reportService.GetCategorySummary(userID, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategorySummaryResponse(month, summaries))
}

// monthFromRequest parses the month query parameter, defaulting to the
// current calendar month when absent.
func monthFromRequest(c echo.Context) (models.MonthKey, error) {
	raw := c.QueryParam("month")
	if raw == "" {
		return models.NewMonthKey(time.Now().UTC()), nil
	}
	return models.ParseMonthKey(raw)
}
