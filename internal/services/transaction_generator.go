package services

import (
	"time"

	"spendsense/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// merchantProfile drives realistic demo spending per category.
type merchantProfile struct {
	name      string
	category  string
	minAmount float64
	maxAmount float64
}

type transactionGenerator struct {
	faker    *gofakeit.Faker
	profiles []merchantProfile
}

const salaryDay = 25

// NewTransactionGenerator creates a new TransactionGeneratorInterface instance.
// Pass seed 0 for non-deterministic output.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker:    gofakeit.New(seed),
		profiles: initMerchantProfiles(),
	}
}

// GenerateMonthlySpending produces count demo expenses spread across a month.
func (g *transactionGenerator) GenerateMonthlySpending(userID uuid.UUID, month models.MonthKey, count int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		profile := g.profiles[g.faker.IntRange(0, len(g.profiles)-1)]
		day := g.faker.IntRange(1, month.Days())
		bookedAt := month.Start().AddDate(0, 0, day-1).
			Add(time.Duration(g.faker.IntRange(8, 21)) * time.Hour)

		amount := decimal.NewFromFloat(g.faker.Float64Range(profile.minAmount, profile.maxAmount)).Round(2)

		txn := &models.Transaction{
			UserID:          userID,
			Amount:          amount.Neg(),
			TransactionType: models.TransactionTypeDebit,
			Category:        profile.category,
			Currency:        models.DefaultCurrency,
			Description:     "Card purchase at " + profile.name,
			MerchantName:    profile.name,
			BookedAt:        &bookedAt,
		}
		txn.Normalize()

		transactions = append(transactions, txn)
	}

	return transactions
}

// GenerateSalary produces one monthly salary credit near the end of the month.
func (g *transactionGenerator) GenerateSalary(userID uuid.UUID, month models.MonthKey) *models.Transaction {
	day := salaryDay
	if day > month.Days() {
		day = month.Days()
	}
	bookedAt := month.Start().AddDate(0, 0, day-1).Add(9 * time.Hour)

	amount := decimal.NewFromFloat(g.faker.Float64Range(2200, 4800)).Round(2)

	txn := &models.Transaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: models.TransactionTypeCredit,
		Category:        models.CategoryIncome,
		Currency:        models.DefaultCurrency,
		Description:     "Salary - " + g.faker.Company(),
		BookedAt:        &bookedAt,
	}
	txn.Normalize()

	return txn
}

func initMerchantProfiles() []merchantProfile {
	return []merchantProfile{
		{"Tesco", models.CategoryGroceries, 8, 95},
		{"Sainsbury's", models.CategoryGroceries, 8, 90},
		{"Aldi", models.CategoryGroceries, 5, 70},
		{"Waitrose", models.CategoryGroceries, 12, 110},
		{"Pret A Manger", models.CategoryDining, 4, 15},
		{"Greggs", models.CategoryDining, 2, 9},
		{"Nando's", models.CategoryDining, 15, 55},
		{"Deliveroo", models.CategoryDining, 12, 45},
		{"TfL Travel", models.CategoryTransport, 2, 12},
		{"Trainline", models.CategoryTransport, 10, 120},
		{"Shell", models.CategoryTransport, 25, 85},
		{"Uber", models.CategoryTransport, 6, 35},
		{"Netflix", models.CategoryEntertainment, 11, 18},
		{"Spotify", models.CategoryEntertainment, 10, 12},
		{"Odeon Cinemas", models.CategoryEntertainment, 9, 40},
		{"Amazon", models.CategoryShopping, 5, 150},
		{"Argos", models.CategoryShopping, 10, 200},
		{"Primark", models.CategoryShopping, 8, 70},
		{"British Gas", models.CategoryBillsUtilities, 45, 160},
		{"Thames Water", models.CategoryBillsUtilities, 25, 60},
		{"Vodafone", models.CategoryBillsUtilities, 15, 55},
		{"Boots", models.CategoryHealth, 4, 45},
		{"PureGym", models.CategoryHealth, 20, 35},
		{"easyJet", models.CategoryTravel, 40, 320},
		{"Premier Inn", models.CategoryTravel, 60, 180},
	}
}
