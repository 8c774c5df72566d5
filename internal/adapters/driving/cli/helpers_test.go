package cli

import (
	"context"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

// mockHierarchyService is a mock implementation of driving.HierarchyService.
type mockHierarchyService struct {
	entries       []domain.HierarchyEntry
	categories    []string
	subcategories []string
	items         []string
	matches       []domain.ItemMatch
	locations     []domain.ItemLocation
	names         []string
	stats         domain.HierarchyStats
	err           error
}

func (m *mockHierarchyService) ListAll(_ context.Context) ([]domain.HierarchyEntry, error) {
	return m.entries, m.err
}

func (m *mockHierarchyService) Categories(_ context.Context) ([]string, error) {
	return m.categories, m.err
}

func (m *mockHierarchyService) Subcategories(_ context.Context, _ string) ([]string, error) {
	return m.subcategories, m.err
}

func (m *mockHierarchyService) FoodItems(_ context.Context, _, _ string) ([]string, error) {
	return m.items, m.err
}

func (m *mockHierarchyService) SearchItems(_ context.Context, _ string) ([]domain.ItemMatch, error) {
	return m.matches, m.err
}

func (m *mockHierarchyService) LocateItem(_ context.Context, _ string) ([]domain.ItemLocation, error) {
	return m.locations, m.err
}

func (m *mockHierarchyService) AllFoodNames(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func (m *mockHierarchyService) Stats(_ context.Context) (domain.HierarchyStats, error) {
	return m.stats, m.err
}

// mockNutritionService is a mock implementation of driving.NutritionService.
type mockNutritionService struct {
	names   []string
	record  *domain.NutritionRecord
	records []domain.NutritionRecord
	err     error
}

func (m *mockNutritionService) FoodNames(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func (m *mockNutritionService) Get(_ context.Context, _ string) (*domain.NutritionRecord, error) {
	return m.record, m.err
}

func (m *mockNutritionService) Search(_ context.Context, _ string) ([]domain.NutritionRecord, error) {
	return m.records, m.err
}

// setupTestServices swaps the package-level services for populated mocks
// and returns a cleanup func restoring the originals.
func setupTestServices() func() {
	oldHierarchy := hierarchyService
	oldNutrition := nutritionService

	hierarchyService = &mockHierarchyService{
		entries: []domain.HierarchyEntry{
			{Category: "Snacks", Subcategory: "Chips", FoodItems: []string{"potato chips", "tortilla chips"}},
		},
		categories:    []string{"Beverages", "Snacks"},
		subcategories: []string{"Chips", "Nuts"},
		items:         []string{"potato chips", "tortilla chips"},
		matches: []domain.ItemMatch{
			{Category: "Snacks", Subcategory: "Chips", Item: "potato chips"},
		},
		locations: []domain.ItemLocation{
			{Category: "Snacks", Subcategory: "Chips"},
		},
		names: []string{"potato chips", "tortilla chips"},
		stats: domain.HierarchyStats{
			TotalCategories:        2,
			TotalSubcategories:     3,
			AvgItemsPerSubcategory: 2,
			MaxItemsInSubcategory:  3,
			MinItemsInSubcategory:  1,
		},
	}
	nutritionService = &mockNutritionService{
		names: []string{"POTATO CHIPS"},
		record: &domain.NutritionRecord{
			Name:               "POTATO CHIPS",
			CaloriesPer100Unit: "536",
			CaloriesUnitLabel:  "kcal",
			DisplayServing: domain.ServingOption{
				MeasurementUnit: "g", Size: "30", UnitLabel: "portion", UnitCount: "1",
			},
			DisplayPortionCalories: 160.8,
			CaloriesAvailable:      true,
		},
		records: []domain.NutritionRecord{
			{Name: "POTATO CHIPS", CaloriesPer100Unit: "536", CaloriesAvailable: true},
		},
	}

	return func() {
		hierarchyService = oldHierarchy
		nutritionService = oldNutrition
	}
}
