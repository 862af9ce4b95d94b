package handlers

import (
	"net/http"
	"time"

	"spendsense/internal/errors"
	"spendsense/internal/models"
	"spendsense/internal/repositories"
	"spendsense/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface, generator services.TransactionGeneratorInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
	}
}

// SeedDemoData generates realistic demo spending for the authenticated user
// @Summary Seed demo data
// @Description Generate demo expenses plus a salary credit for one or more months (development only)
// @Tags Development
// @Security BearerAuth
// @Produce json
// @Param months query int false "Number of months of history to seed (default 2, max 12)"
// @Param count query int false "Expenses per month (default 60, max 500)"
// @Success 200 {object} SuccessResponse "Demo data seeded"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dev/seed [post]
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months := getIntParam(c, "months", 2)
	if months < 1 {
		months = 1
	}
	if months > 12 {
		months = 12
	}

	count := getIntParam(c, "count", 60)
	if count < 1 {
		count = 1
	}
	if count > 500 {
		count = 500
	}

	month := models.NewMonthKey(time.Now().UTC())
	created := 0
	for i := 0; i < months; i++ {
		batch := h.generator.GenerateMonthlySpending(userID, month, count)
		batch = append(batch, h.generator.GenerateSalary(userID, month))

		if err := h.transactionRepo.CreateBatch(batch); err != nil {
			return SendSystemError(c, err)
		}

		created += len(batch)
		month = month.Previous()
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "demo data seeded",
		Meta: map[string]interface{}{
			"transactions_created": created,
			"months":               months,
		},
	})
}
