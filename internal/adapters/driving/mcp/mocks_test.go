package mcp

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
