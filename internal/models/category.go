package models

// Standard spending categories
const (
	CategoryGroceries      = "GROCERIES"
	CategoryDining         = "DINING"
	CategoryTransport      = "TRANSPORT"
	CategoryEntertainment  = "ENTERTAINMENT"
	CategoryShopping       = "SHOPPING"
	CategoryBillsUtilities = "BILLS_UTILITIES"
	CategoryHealth         = "HEALTH"
	CategoryTravel         = "TRAVEL"
	CategoryIncome         = "INCOME"
	CategoryOther          = "OTHER"
)

// CategoryInfo carries the presentation metadata the mobile clients render
// next to each category. It has no effect on aggregation.
type CategoryInfo struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultCategories returns the built-in category set in display order.
func DefaultCategories() []CategoryInfo {
	return []CategoryInfo{
		{Name: CategoryGroceries, Icon: "cart", Color: "#4CAF50"},
		{Name: CategoryDining, Icon: "restaurant", Color: "#FF9800"},
		{Name: CategoryTransport, Icon: "car", Color: "#2196F3"},
		{Name: CategoryEntertainment, Icon: "film", Color: "#9C27B0"},
		{Name: CategoryShopping, Icon: "bag", Color: "#E91E63"},
		{Name: CategoryBillsUtilities, Icon: "receipt", Color: "#607D8B"},
		{Name: CategoryHealth, Icon: "heart", Color: "#F44336"},
		{Name: CategoryTravel, Icon: "airplane", Color: "#00BCD4"},
		{Name: CategoryOther, Icon: "dots", Color: "#9E9E9E"},
	}
}

// AllCategories returns all valid category names
func AllCategories() []string {
	infos := DefaultCategories()
	names := make([]string, 0, len(infos)+1)
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return append(names, CategoryIncome)
}

// IsKnownCategory checks whether a category is one of the built-in set.
// Unknown labels are still accepted at ingestion (the feed sends free text);
// this only gates budget overrides, which must target a known category.
func IsKnownCategory(category string) bool {
	for _, name := range AllCategories() {
		if category == name {
			return true
		}
	}
	return false
}
