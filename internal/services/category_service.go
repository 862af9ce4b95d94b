package services

import (
	"strings"

	"spendsense/internal/models"
)

type categoryService struct {
	merchantPatterns    map[string]string
	descriptionPatterns []descriptionPattern
}

type descriptionPattern struct {
	keywords []string
	category string
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		merchantPatterns:    initMerchantPatterns(),
		descriptionPatterns: initDescriptionPatterns(),
	}
}

// CategorizeByMerchant categorizes based on merchant name
func (s *categoryService) CategorizeByMerchant(merchantName string) (string, bool) {
	if merchantName == "" {
		return models.CategoryOther, false
	}

	normalized := normalizeForMatching(merchantName)

	for pattern, category := range s.merchantPatterns {
		if strings.Contains(normalized, normalizeForMatching(pattern)) {
			return category, true
		}
	}

	return models.CategoryOther, false
}

// CategorizeByDescription categorizes based on transaction description
func (s *categoryService) CategorizeByDescription(description string) (string, bool) {
	if description == "" {
		return models.CategoryOther, false
	}

	normalized := strings.ToLower(description)

	for _, pattern := range s.descriptionPatterns {
		for _, keyword := range pattern.keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				return pattern.category, true
			}
		}
	}

	return models.CategoryOther, false
}

// Categorize picks the best category for a transaction. A category already
// present on the feed entry wins; merchant matching beats description
// matching; OTHER is the fallback.
func (s *categoryService) Categorize(transaction *models.Transaction) string {
	if transaction == nil {
		return models.CategoryOther
	}

	if transaction.Category != "" && transaction.Category != models.CategoryOther {
		return transaction.Category
	}

	if category, ok := s.CategorizeByMerchant(transaction.MerchantName); ok {
		return category
	}

	if category, ok := s.CategorizeByDescription(transaction.Description); ok {
		return category
	}

	return models.CategoryOther
}

// initMerchantPatterns initializes common merchant to category mappings
func initMerchantPatterns() map[string]string {
	return map[string]string{
		// Groceries
		"Tesco":      models.CategoryGroceries,
		"Sainsbury":  models.CategoryGroceries,
		"Asda":       models.CategoryGroceries,
		"Morrisons":  models.CategoryGroceries,
		"Aldi":       models.CategoryGroceries,
		"Lidl":       models.CategoryGroceries,
		"Waitrose":   models.CategoryGroceries,
		"Co-op Food": models.CategoryGroceries,

		// Dining
		"Pret A Manger": models.CategoryDining,
		"Greggs":        models.CategoryDining,
		"Nando":         models.CategoryDining,
		"Costa Coffee":  models.CategoryDining,
		"Starbucks":     models.CategoryDining,
		"McDonald":      models.CategoryDining,
		"Deliveroo":     models.CategoryDining,
		"Just Eat":      models.CategoryDining,

		// Transport
		"TfL":       models.CategoryTransport,
		"Trainline": models.CategoryTransport,
		"Uber":      models.CategoryTransport,
		"Shell":     models.CategoryTransport,
		"BP":        models.CategoryTransport,
		"Esso":      models.CategoryTransport,

		// Entertainment
		"Netflix":   models.CategoryEntertainment,
		"Spotify":   models.CategoryEntertainment,
		"Disney":    models.CategoryEntertainment,
		"Odeon":     models.CategoryEntertainment,
		"Cineworld": models.CategoryEntertainment,

		// Shopping
		"Amazon":          models.CategoryShopping,
		"Argos":           models.CategoryShopping,
		"John Lewis":      models.CategoryShopping,
		"Marks & Spencer": models.CategoryShopping,
		"IKEA":            models.CategoryShopping,
		"Primark":         models.CategoryShopping,

		// Bills & utilities
		"British Gas":    models.CategoryBillsUtilities,
		"EDF Energy":     models.CategoryBillsUtilities,
		"Octopus Energy": models.CategoryBillsUtilities,
		"Thames Water":   models.CategoryBillsUtilities,
		"Vodafone":       models.CategoryBillsUtilities,
		"O2":             models.CategoryBillsUtilities,
		"EE":             models.CategoryBillsUtilities,
		"Sky":            models.CategoryBillsUtilities,
		"Virgin Media":   models.CategoryBillsUtilities,

		// Health
		"Boots":     models.CategoryHealth,
		"Superdrug": models.CategoryHealth,
		"Bupa":      models.CategoryHealth,

		// Travel
		"British Airways": models.CategoryTravel,
		"easyJet":         models.CategoryTravel,
		"Ryanair":         models.CategoryTravel,
		"Premier Inn":     models.CategoryTravel,
		"Travelodge":      models.CategoryTravel,
		"Airbnb":          models.CategoryTravel,
	}
}

// initDescriptionPatterns initializes description-based categorization patterns
func initDescriptionPatterns() []descriptionPattern {
	return []descriptionPattern{
		{
			keywords: []string{"salary", "payroll", "wages", "paycheck"},
			category: models.CategoryIncome,
		},
		{
			keywords: []string{"supermarket", "grocery", "groceries"},
			category: models.CategoryGroceries,
		},
		{
			keywords: []string{"restaurant", "cafe", "coffee", "takeaway"},
			category: models.CategoryDining,
		},
		{
			keywords: []string{"rail", "bus", "fuel", "petrol", "parking"},
			category: models.CategoryTransport,
		},
		{
			keywords: []string{"direct debit - energy", "electricity", "gas bill", "water bill", "council tax", "broadband"},
			category: models.CategoryBillsUtilities,
		},
		{
			keywords: []string{"pharmacy", "dental", "gp surgery"},
			category: models.CategoryHealth,
		},
		{
			keywords: []string{"hotel", "flight", "airline"},
			category: models.CategoryTravel,
		},
	}
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	for _, cut := range []string{"-", "_", " ", "'", ".", "&"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}
