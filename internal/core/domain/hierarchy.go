package domain

// HierarchyEntry is one category/subcategory grouping with its list of
// food item names. Entries are authored externally; the engine only reads them.
type HierarchyEntry struct {
	// Category is the top-level food category name.
	Category string

	// Subcategory is the sub-group inside the category.
	Subcategory string

	// FoodItems holds the item names in this subcategory, in dataset order.
	// Duplicates within one entry are permitted.
	FoodItems []string
}

// ItemMatch is a single keyword-search hit: one occurrence of a food item
// inside a hierarchy entry.
type ItemMatch struct {
	Category    string
	Subcategory string
	Item        string
}

// ItemLocation identifies where in the hierarchy a food item lives.
type ItemLocation struct {
	Category    string
	Subcategory string
}

// HierarchyStats summarises the hierarchy dataset. For an empty hierarchy
// every field is zero.
type HierarchyStats struct {
	// TotalCategories is the number of distinct category values.
	TotalCategories int

	// TotalSubcategories is the number of distinct subcategory values.
	TotalSubcategories int

	// AvgItemsPerSubcategory is the mean item count across all entries.
	AvgItemsPerSubcategory float64

	// MaxItemsInSubcategory is the largest item count of any entry.
	MaxItemsInSubcategory int

	// MinItemsInSubcategory is the smallest item count of any entry.
	MinItemsInSubcategory int
}
