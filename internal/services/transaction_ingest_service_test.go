package services

import (
	"testing"
	"time"

	"spendsense/internal/database"
	"spendsense/internal/models"
	"spendsense/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionIngestServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    repositories.TransactionRepositoryInterface
	service TransactionIngestServiceInterface
	userID  uuid.UUID
}

func TestTransactionIngestServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionIngestServiceTestSuite))
}

func (s *TransactionIngestServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()

	s.service = NewTransactionIngestService(s.repo, NewCategoryService(), nil, 100)
}

func (s *TransactionIngestServiceTestSuite) feedEntry(amount float64, txnType string) *models.Transaction {
	bookedAt := time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC)
	return &models.Transaction{
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: txnType,
		Description:     "feed entry",
		BookedAt:        &bookedAt,
	}
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_PersistsForUser() {
	entries := []*models.Transaction{
		s.feedEntry(25.50, models.TransactionTypeDebit),
		s.feedEntry(2000, models.TransactionTypeCredit),
	}

	ingested, err := s.service.IngestBatch(s.userID, entries)

	s.NoError(err)
	s.Len(ingested, 2)

	stored, total, err := s.repo.GetByUserID(s.userID, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(stored, 2)
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_NormalizesSigns() {
	// Feeds disagree on sign conventions; the declared type is authoritative.
	debit := s.feedEntry(25.50, models.TransactionTypeDebit)
	credit := s.feedEntry(-2000, models.TransactionTypeCredit)

	ingested, err := s.service.IngestBatch(s.userID, []*models.Transaction{debit, credit})

	s.NoError(err)
	s.True(ingested[0].Amount.Equal(decimal.NewFromFloat(-25.50)))
	s.True(ingested[1].Amount.Equal(decimal.NewFromInt(2000)))
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_CategorizesByMerchant() {
	entry := s.feedEntry(12.40, models.TransactionTypeDebit)
	entry.MerchantName = "TESCO STORES 3297"

	ingested, err := s.service.IngestBatch(s.userID, []*models.Transaction{entry})

	s.NoError(err)
	s.Equal(models.CategoryGroceries, ingested[0].Category)
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_KeepsProvidedCategory() {
	entry := s.feedEntry(12.40, models.TransactionTypeDebit)
	entry.Category = models.CategoryTravel
	entry.MerchantName = "Tesco"

	ingested, err := s.service.IngestBatch(s.userID, []*models.Transaction{entry})

	s.NoError(err)
	s.Equal(models.CategoryTravel, ingested[0].Category)
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_AcceptsUndated() {
	entry := s.feedEntry(12.40, models.TransactionTypeDebit)
	entry.BookedAt = nil

	ingested, err := s.service.IngestBatch(s.userID, []*models.Transaction{entry})

	s.NoError(err)
	s.Nil(ingested[0].BookedAt)

	_, total, err := s.repo.GetByUserID(s.userID, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_EmptyBatch() {
	_, err := s.service.IngestBatch(s.userID, nil)

	s.ErrorIs(err, ErrEmptyBatch)
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_TooLarge() {
	service := NewTransactionIngestService(s.repo, NewCategoryService(), nil, 2)

	entries := []*models.Transaction{
		s.feedEntry(1, models.TransactionTypeDebit),
		s.feedEntry(2, models.TransactionTypeDebit),
		s.feedEntry(3, models.TransactionTypeDebit),
	}

	_, err := service.IngestBatch(s.userID, entries)

	s.ErrorIs(err, ErrBatchTooLarge)
}

func (s *TransactionIngestServiceTestSuite) TestIngestBatch_RejectsInvalidEntry() {
	valid := s.feedEntry(10, models.TransactionTypeDebit)
	invalid := s.feedEntry(0, models.TransactionTypeDebit)

	_, err := s.service.IngestBatch(s.userID, []*models.Transaction{valid, invalid})

	s.ErrorIs(err, models.ErrZeroAmount)

	// The whole batch is rejected, nothing is persisted.
	_, total, repoErr := s.repo.GetByUserID(s.userID, 0, 10)
	s.NoError(repoErr)
	s.Equal(int64(0), total)
}

func (s *TransactionIngestServiceTestSuite) TestListTransactions() {
	entries := []*models.Transaction{
		s.feedEntry(10, models.TransactionTypeDebit),
		s.feedEntry(20, models.TransactionTypeDebit),
		s.feedEntry(30, models.TransactionTypeDebit),
	}
	_, err := s.service.IngestBatch(s.userID, entries)
	s.NoError(err)

	transactions, total, err := s.service.ListTransactions(s.userID, "", nil, 0, 2)

	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(transactions, 2)
}

func (s *TransactionIngestServiceTestSuite) TestListTransactions_FilterByMonth() {
	february := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	inFebruary := s.feedEntry(10, models.TransactionTypeDebit)
	inFebruary.BookedAt = &february
	inMarch := s.feedEntry(20, models.TransactionTypeDebit)
	undated := s.feedEntry(30, models.TransactionTypeDebit)
	undated.BookedAt = nil

	_, err := s.service.IngestBatch(s.userID, []*models.Transaction{inFebruary, inMarch, undated})
	s.NoError(err)

	month := models.MonthKey("2024-03")
	transactions, total, err := s.service.ListTransactions(s.userID, "", &month, 0, 10)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)
	s.Equal(8, transactions[0].BookedAt.Day())
}

func (s *TransactionIngestServiceTestSuite) TestListTransactions_FilterByCategory() {
	groceries := s.feedEntry(10, models.TransactionTypeDebit)
	groceries.MerchantName = "Tesco"
	dining := s.feedEntry(20, models.TransactionTypeDebit)
	dining.MerchantName = "Greggs"

	_, err := s.service.IngestBatch(s.userID, []*models.Transaction{groceries, dining})
	s.NoError(err)

	transactions, total, err := s.service.ListTransactions(s.userID, models.CategoryDining, nil, 0, 10)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(transactions, 1)
	s.Equal(models.CategoryDining, transactions[0].Category)
}

func (s *TransactionIngestServiceTestSuite) TestUsedCategories() {
	database.CreateTestExpense(s.T(), s.db, s.userID, models.CategoryGroceries, 30,
		time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC))
	database.CreateTestExpense(s.T(), s.db, s.userID, models.CategoryDining, 18,
		time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC))
	database.CreateTestIncome(s.T(), s.db, s.userID, 2500,
		time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC))
	database.CreateTestExpense(s.T(), s.db, s.userID, models.CategoryShopping, 60,
		time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC))

	categories, err := s.service.UsedCategories(s.userID, models.MonthKey("2024-03"))

	s.NoError(err)
	s.Equal([]string{models.CategoryDining, models.CategoryGroceries}, categories)
}
