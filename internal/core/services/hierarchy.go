package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driven"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driving"
	"github.com/foodatlas/foodatlas-cli/internal/logger"
)

// Ensure HierarchyService implements the interface.
var _ driving.HierarchyService = (*HierarchyService)(nil)

// HierarchyService answers traversal, search, and statistics queries over
// the food hierarchy collection. It holds no state between calls; every
// query is resolved against the current store contents.
type HierarchyService struct {
	store driven.HierarchyStore
}

// NewHierarchyService creates a new hierarchy query service.
func NewHierarchyService(store driven.HierarchyStore) *HierarchyService {
	return &HierarchyService{store: store}
}

// ListAll returns every hierarchy entry verbatim.
func (s *HierarchyService) ListAll(ctx context.Context) ([]domain.HierarchyEntry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hierarchy: %w", err)
	}

	logger.Debug("Hierarchy: %d entries", len(entries))

	if entries == nil {
		entries = []domain.HierarchyEntry{}
	}
	return entries, nil
}

// Categories returns the distinct category names, sorted.
func (s *HierarchyService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.store.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	logger.Debug("Categories: %d", len(categories))

	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// Subcategories returns the distinct subcategory names of the given category.
// The category is matched exactly (case-sensitive); an unknown category
// yields an empty slice, not an error.
func (s *HierarchyService) Subcategories(ctx context.Context, category string) ([]string, error) {
	subcategories, err := s.store.DistinctSubcategories(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list subcategories of %q: %w", category, err)
	}

	logger.Debug("Subcategories of %q: %d", category, len(subcategories))

	if subcategories == nil {
		subcategories = []string{}
	}
	return subcategories, nil
}

// FoodItems returns the item names of the entry matching the pair exactly.
// Should the dataset hold several entries for one pair, their item lists are
// concatenated without deduplication. An unknown pair yields an empty slice.
func (s *HierarchyService) FoodItems(ctx context.Context, category, subcategory string) ([]string, error) {
	entries, err := s.store.Find(ctx, driven.HierarchyFilter{
		Category:    &category,
		Subcategory: &subcategory,
	})
	if err != nil {
		return nil, fmt.Errorf("find %q/%q: %w", category, subcategory, err)
	}

	items := []string{}
	for _, e := range entries {
		items = append(items, e.FoodItems...)
	}

	logger.Debug("Items in %q/%q: %d", category, subcategory, len(items))
	return items, nil
}

// SearchItems returns one match per (entry, item) occurrence whose name
// contains the keyword case-insensitively. An empty keyword matches every
// item. The flatten runs in memory over the store listing, so the engine
// stays portable across backends without pipeline support.
func (s *HierarchyService) SearchItems(ctx context.Context, keyword string) ([]domain.ItemMatch, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	needle := strings.ToLower(keyword)

	matches := []domain.ItemMatch{}
	for _, e := range entries {
		for _, item := range e.FoodItems {
			if strings.Contains(strings.ToLower(item), needle) {
				matches = append(matches, domain.ItemMatch{
					Category:    e.Category,
					Subcategory: e.Subcategory,
					Item:        item,
				})
			}
		}
	}

	logger.Debug("Search %q: %d matches", keyword, len(matches))
	return matches, nil
}

// LocateItem returns one location per entry holding a case-insensitive
// whole-string match for the item name. Zero matches yields an empty slice.
func (s *HierarchyService) LocateItem(ctx context.Context, item string) ([]domain.ItemLocation, error) {
	entries, err := s.store.Find(ctx, driven.HierarchyFilter{
		Item: &driven.StringMatch{Value: item, Kind: driven.MatchExactFold},
	})
	if err != nil {
		return nil, fmt.Errorf("locate %q: %w", item, err)
	}

	locations := make([]domain.ItemLocation, len(entries))
	for i, e := range entries {
		locations[i] = domain.ItemLocation{
			Category:    e.Category,
			Subcategory: e.Subcategory,
		}
	}

	logger.Debug("Locate %q: %d entries", item, len(locations))
	return locations, nil
}

// AllFoodNames returns the union of every item name across every entry,
// deduplicated by exact string in first-seen store iteration order. Names
// differing only in case stay distinct.
func (s *HierarchyService) AllFoodNames(ctx context.Context) ([]string, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food names: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, e := range entries {
		for _, item := range e.FoodItems {
			if seen[item] {
				continue
			}
			seen[item] = true
			names = append(names, item)
		}
	}

	logger.Debug("All food names: %d unique", len(names))
	return names, nil
}

// Stats computes descriptive statistics over the hierarchy as an in-memory
// fold. An empty hierarchy reports zero for every field.
func (s *HierarchyService) Stats(ctx context.Context) (domain.HierarchyStats, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return domain.HierarchyStats{}, fmt.Errorf("hierarchy stats: %w", err)
	}

	if len(entries) == 0 {
		return domain.HierarchyStats{}, nil
	}

	categories := make(map[string]bool)
	subcategories := make(map[string]bool)

	total := 0
	maxItems := len(entries[0].FoodItems)
	minItems := maxItems

	for _, e := range entries {
		categories[e.Category] = true
		subcategories[e.Subcategory] = true

		n := len(e.FoodItems)
		total += n
		if n > maxItems {
			maxItems = n
		}
		if n < minItems {
			minItems = n
		}
	}

	stats := domain.HierarchyStats{
		TotalCategories:        len(categories),
		TotalSubcategories:     len(subcategories),
		AvgItemsPerSubcategory: float64(total) / float64(len(entries)),
		MaxItemsInSubcategory:  maxItems,
		MinItemsInSubcategory:  minItems,
	}

	logger.Debug("Stats: %d categories, %d subcategories, avg %.2f items",
		stats.TotalCategories, stats.TotalSubcategories, stats.AvgItemsPerSubcategory)
	return stats, nil
}
