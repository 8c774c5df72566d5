package driving

import (
	"context"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

// HierarchyService answers traversal, search, and statistics queries over
// the food hierarchy. All operations are read-only and stateless; slice
// results are never nil.
type HierarchyService interface {
	// ListAll returns every hierarchy entry.
	ListAll(ctx context.Context) ([]domain.HierarchyEntry, error)

	// Categories returns the distinct category names, sorted.
	Categories(ctx context.Context) ([]string, error)

	// Subcategories returns the distinct subcategory names of the given
	// category (exact, case-sensitive match), sorted. An unknown category
	// yields an empty slice.
	Subcategories(ctx context.Context, category string) ([]string, error)

	// FoodItems returns the item names of the entry matching the
	// category/subcategory pair. An unknown pair yields an empty slice.
	FoodItems(ctx context.Context, category, subcategory string) ([]string, error)

	// SearchItems returns one match per item occurrence whose name contains
	// the keyword case-insensitively. An empty keyword matches every item.
	SearchItems(ctx context.Context, keyword string) ([]domain.ItemMatch, error)

	// LocateItem returns the hierarchy positions holding a case-insensitive
	// exact (whole-string) match for the item name.
	LocateItem(ctx context.Context, item string) ([]domain.ItemLocation, error)

	// AllFoodNames returns the deduplicated union of every item name.
	AllFoodNames(ctx context.Context) ([]string, error)

	// Stats returns descriptive statistics for the hierarchy dataset.
	Stats(ctx context.Context) (domain.HierarchyStats, error)
}
