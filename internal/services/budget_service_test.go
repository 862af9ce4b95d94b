package services

import (
	"testing"

	"spendsense/internal/config"
	"spendsense/internal/database"
	"spendsense/internal/models"
	"spendsense/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service BudgetServiceInterface
	userID  uuid.UUID
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.userID = uuid.New()

	defaults := config.BudgetConfig{
		DefaultCategoryBudget: decimal.NewFromInt(500),
		OtherCategoryBudget:   decimal.NewFromInt(200),
		MainBudget:            decimal.NewFromInt(2000),
		SplitMainBudget:       false,
	}

	s.service = NewBudgetService(repositories.NewBudgetRepository(s.db.DB), defaults, nil)
}

func (s *BudgetServiceTestSuite) TestResolveBudgets_Defaults() {
	budgets, err := s.service.ResolveBudgets(s.userID, []string{models.CategoryGroceries, models.CategoryOther})

	s.NoError(err)
	s.True(budgets[models.CategoryGroceries].Equal(decimal.NewFromInt(500)))
	s.True(budgets[models.CategoryOther].Equal(decimal.NewFromInt(200)))
}

func (s *BudgetServiceTestSuite) TestResolveBudgets_OverrideWins() {
	database.CreateTestBudget(s.T(), s.db, s.userID, models.CategoryGroceries, 350)

	budgets, err := s.service.ResolveBudgets(s.userID, []string{models.CategoryGroceries, models.CategoryDining})

	s.NoError(err)
	s.True(budgets[models.CategoryGroceries].Equal(decimal.NewFromInt(350)))
	s.True(budgets[models.CategoryDining].Equal(decimal.NewFromInt(500)))
}

func (s *BudgetServiceTestSuite) TestResolveBudgets_OverrideIsPerUser() {
	database.CreateTestBudget(s.T(), s.db, uuid.New(), models.CategoryGroceries, 350)

	budgets, err := s.service.ResolveBudgets(s.userID, []string{models.CategoryGroceries})

	s.NoError(err)
	s.True(budgets[models.CategoryGroceries].Equal(decimal.NewFromInt(500)))
}

func (s *BudgetServiceTestSuite) TestResolveBudgets_SplitMainBudget() {
	defaults := config.BudgetConfig{
		DefaultCategoryBudget: decimal.NewFromInt(500),
		OtherCategoryBudget:   decimal.NewFromInt(200),
		MainBudget:            decimal.NewFromInt(2000),
		SplitMainBudget:       true,
	}
	service := NewBudgetService(repositories.NewBudgetRepository(s.db.DB), defaults, nil)

	budgets, err := service.ResolveBudgets(s.userID, []string{
		models.CategoryGroceries,
		models.CategoryDining,
		models.CategoryTransport,
		models.CategoryOther,
	})

	s.NoError(err)
	for category, budget := range budgets {
		s.True(budget.Equal(decimal.NewFromInt(500)), "category %s got %s", category, budget)
	}
}

func (s *BudgetServiceTestSuite) TestResolveBudgets_SplitRespectsOverride() {
	database.CreateTestBudget(s.T(), s.db, s.userID, models.CategoryDining, 120)

	defaults := config.BudgetConfig{
		DefaultCategoryBudget: decimal.NewFromInt(500),
		OtherCategoryBudget:   decimal.NewFromInt(200),
		MainBudget:            decimal.NewFromInt(1000),
		SplitMainBudget:       true,
	}
	service := NewBudgetService(repositories.NewBudgetRepository(s.db.DB), defaults, nil)

	budgets, err := service.ResolveBudgets(s.userID, []string{models.CategoryGroceries, models.CategoryDining})

	s.NoError(err)
	s.True(budgets[models.CategoryGroceries].Equal(decimal.NewFromInt(500)))
	s.True(budgets[models.CategoryDining].Equal(decimal.NewFromInt(120)))
}

func (s *BudgetServiceTestSuite) TestResolveBudgets_EmptyCategories() {
	budgets, err := s.service.ResolveBudgets(s.userID, nil)

	s.NoError(err)
	s.Empty(budgets)
}

func (s *BudgetServiceTestSuite) TestTotalBudget() {
	database.CreateTestBudget(s.T(), s.db, s.userID, models.CategoryGroceries, 300)

	total, err := s.service.TotalBudget(s.userID, []string{models.CategoryGroceries, models.CategoryDining, models.CategoryOther})

	s.NoError(err)
	// 300 override + 500 default + 200 OTHER default
	s.True(total.Equal(decimal.NewFromInt(1000)))
}

func (s *BudgetServiceTestSuite) TestSetBudget_CreatesOverride() {
	budget, err := s.service.SetBudget(s.userID, models.CategoryTravel, decimal.NewFromInt(250))

	s.NoError(err)
	s.NotNil(budget)
	s.Equal(models.CategoryTravel, budget.Category)

	stored, err := s.service.ListBudgets(s.userID)
	s.NoError(err)
	s.Len(stored, 1)
	s.True(stored[0].MonthlyBudget.Equal(decimal.NewFromInt(250)))
}

func (s *BudgetServiceTestSuite) TestSetBudget_ReplacesExisting() {
	_, err := s.service.SetBudget(s.userID, models.CategoryTravel, decimal.NewFromInt(250))
	s.NoError(err)

	_, err = s.service.SetBudget(s.userID, models.CategoryTravel, decimal.NewFromInt(400))
	s.NoError(err)

	stored, err := s.service.ListBudgets(s.userID)
	s.NoError(err)
	s.Len(stored, 1)
	s.True(stored[0].MonthlyBudget.Equal(decimal.NewFromInt(400)))
}

func (s *BudgetServiceTestSuite) TestSetBudget_UnknownCategory() {
	_, err := s.service.SetBudget(s.userID, "CRYPTO", decimal.NewFromInt(100))

	s.ErrorIs(err, ErrUnknownBudgetCategory)
}

func (s *BudgetServiceTestSuite) TestSetBudget_NegativeAmount() {
	_, err := s.service.SetBudget(s.userID, models.CategoryGroceries, decimal.NewFromInt(-10))

	s.ErrorIs(err, ErrNegativeBudget)
}

func (s *BudgetServiceTestSuite) TestSetBudget_ZeroIsAllowed() {
	budget, err := s.service.SetBudget(s.userID, models.CategoryEntertainment, decimal.Zero)

	s.NoError(err)
	s.True(budget.MonthlyBudget.IsZero())
}

func (s *BudgetServiceTestSuite) TestRemoveBudget() {
	_, err := s.service.SetBudget(s.userID, models.CategoryTravel, decimal.NewFromInt(250))
	s.NoError(err)

	s.NoError(s.service.RemoveBudget(s.userID, models.CategoryTravel))

	budgets, err := s.service.ResolveBudgets(s.userID, []string{models.CategoryTravel})
	s.NoError(err)
	s.True(budgets[models.CategoryTravel].Equal(decimal.NewFromInt(500)))
}

func (s *BudgetServiceTestSuite) TestRemoveBudget_NotFound() {
	err := s.service.RemoveBudget(s.userID, models.CategoryTravel)

	s.ErrorIs(err, repositories.ErrBudgetNotFound)
}
