package services

import (
	"testing"
	"time"

	"spendsense/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	service *categoryService
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.service = NewCategoryService().(*categoryService)
}

func (s *CategoryServiceTestSuite) TestCategorizeByMerchant_KnownMerchants() {
	testCases := []struct {
		merchant         string
		expectedCategory string
	}{
		{"Tesco", models.CategoryGroceries},
		{"TESCO STORES 3297", models.CategoryGroceries},
		{"Sainsbury's Local", models.CategoryGroceries},
		{"Pret A Manger", models.CategoryDining},
		{"GREGGS PLC", models.CategoryDining},
		{"TfL Travel Charge", models.CategoryTransport},
		{"Trainline", models.CategoryTransport},
		{"Netflix.com", models.CategoryEntertainment},
		{"AMAZON MKTPLACE", models.CategoryShopping},
		{"British Gas", models.CategoryBillsUtilities},
		{"Octopus Energy", models.CategoryBillsUtilities},
		{"Boots 1204", models.CategoryHealth},
		{"British Airways", models.CategoryTravel},
	}

	for _, tc := range testCases {
		s.Run(tc.merchant, func() {
			category, matched := s.service.CategorizeByMerchant(tc.merchant)
			s.True(matched)
			s.Equal(tc.expectedCategory, category)
		})
	}
}

func (s *CategoryServiceTestSuite) TestCategorizeByMerchant_UnknownMerchant() {
	category, matched := s.service.CategorizeByMerchant("Completely Unknown Shop Ltd")
	s.False(matched)
	s.Equal(models.CategoryOther, category)
}

func (s *CategoryServiceTestSuite) TestCategorizeByMerchant_Empty() {
	category, matched := s.service.CategorizeByMerchant("")
	s.False(matched)
	s.Equal(models.CategoryOther, category)
}

func (s *CategoryServiceTestSuite) TestCategorizeByMerchant_NormalizesPunctuation() {
	category, matched := s.service.CategorizeByMerchant("sains-burys")
	s.True(matched)
	s.Equal(models.CategoryGroceries, category)
}

func (s *CategoryServiceTestSuite) TestCategorizeByDescription_Keywords() {
	testCases := []struct {
		description      string
		expectedCategory string
	}{
		{"Monthly salary payment", models.CategoryIncome},
		{"Local supermarket shop", models.CategoryGroceries},
		{"Dinner at the restaurant", models.CategoryDining},
		{"Bus ticket to work", models.CategoryTransport},
		{"Electricity bill March", models.CategoryBillsUtilities},
		{"Pharmacy prescription", models.CategoryHealth},
		{"Hotel booking Edinburgh", models.CategoryTravel},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			category, matched := s.service.CategorizeByDescription(tc.description)
			s.True(matched)
			s.Equal(tc.expectedCategory, category)
		})
	}
}

func (s *CategoryServiceTestSuite) TestCategorizeByDescription_NoMatch() {
	category, matched := s.service.CategorizeByDescription("miscellaneous payment ref 991")
	s.False(matched)
	s.Equal(models.CategoryOther, category)
}

func (s *CategoryServiceTestSuite) TestCategorize_KeepsExistingCategory() {
	txn := s.newTransaction()
	txn.Category = models.CategoryHealth
	txn.MerchantName = "Tesco"

	s.Equal(models.CategoryHealth, s.service.Categorize(txn))
}

func (s *CategoryServiceTestSuite) TestCategorize_MerchantBeatsDescription() {
	txn := s.newTransaction()
	txn.Category = models.CategoryOther
	txn.MerchantName = "Tesco"
	txn.Description = "Dinner at the restaurant"

	s.Equal(models.CategoryGroceries, s.service.Categorize(txn))
}

func (s *CategoryServiceTestSuite) TestCategorize_FallsBackToDescription() {
	txn := s.newTransaction()
	txn.Category = models.CategoryOther
	txn.MerchantName = "Unknown Vendor"
	txn.Description = "Pharmacy prescription"

	s.Equal(models.CategoryHealth, s.service.Categorize(txn))
}

func (s *CategoryServiceTestSuite) TestCategorize_DefaultsToOther() {
	txn := s.newTransaction()

	s.Equal(models.CategoryOther, s.service.Categorize(txn))
}

func (s *CategoryServiceTestSuite) newTransaction() *models.Transaction {
	bookedAt := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	return &models.Transaction{
		Amount:          decimal.NewFromFloat(-12.50),
		TransactionType: models.TransactionTypeDebit,
		BookedAt:        &bookedAt,
	}
}
