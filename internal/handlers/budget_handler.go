package handlers

import (
	stderrors "errors"
	"net/http"

	"spendsense/internal/dto"
	"spendsense/internal/errors"
	"spendsense/internal/models"
	"spendsense/internal/repositories"
	"spendsense/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles category budget requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// ListBudgets lists the authenticated user's budget overrides
// @Summary List budget overrides
// @Description Retrieve every stored per-category budget override for the user
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListBudgetsResponse "Stored overrides"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgets, err := h.budgetService.ListBudgets(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = dto.NewBudgetResponse(&budgets[i])
	}

	return c.JSON(http.StatusOK, dto.ListBudgetsResponse{Budgets: responses})
}

// SetBudget creates or replaces a category budget override
// @Summary Set a budget override
// @Description Create or replace the monthly budget ceiling for one category
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category path string true "Spending category"
// @Param request body dto.SetBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse "Override stored"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_001 - Unknown budget category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{category} [put]
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	// budget_amount validation guarantees this parses
	monthly, _ := decimal.NewFromString(req.MonthlyBudget)

	budget, err := h.budgetService.SetBudget(userID, c.Param("category"), monthly)
	if err != nil {
		switch {
		case err == services.ErrUnknownBudgetCategory:
			return SendError(c, errors.BudgetUnknownCategory)
		case err == services.ErrNegativeBudget:
			return SendError(c, errors.BudgetNegativeAmount)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// RemoveBudget deletes a category budget override
// @Summary Remove a budget override
// @Description Delete the stored override, restoring the default ceiling for the category
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param category path string true "Spending category"
// @Success 200 {object} SuccessResponse "Override removed"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_003 - No override stored for the category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{category} [delete]
func (h *BudgetHandler) RemoveBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.budgetService.RemoveBudget(userID, c.Param("category")); err != nil {
		if stderrors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget override removed"})
}

// ListCategories lists the known spending categories
// @Summary List categories
// @Description Retrieve the known spending category set with display metadata
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse "Category set"
// @Router /categories [get]
func (h *BudgetHandler) ListCategories(c echo.Context) error {
	defaults := models.DefaultCategories()

	responses := make([]dto.CategoryResponse, len(defaults))
	for i, info := range defaults {
		responses[i] = dto.CategoryResponse{
			Name:  info.Name,
			Icon:  info.Icon,
			Color: info.Color,
		}
	}

	return c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: responses})
}
