package services

import (
	"context"
	"fmt"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driven"
)

// failingHierarchyStore fails every call with a wrapped store error.
type failingHierarchyStore struct{}

func (failingHierarchyStore) storeErr() error {
	return fmt.Errorf("query: %w: connection refused", domain.ErrStoreUnavailable)
}

func (s failingHierarchyStore) List(_ context.Context) ([]domain.HierarchyEntry, error) {
	return nil, s.storeErr()
}

func (s failingHierarchyStore) Find(_ context.Context, _ driven.HierarchyFilter) ([]domain.HierarchyEntry, error) {
	return nil, s.storeErr()
}

func (s failingHierarchyStore) DistinctCategories(_ context.Context) ([]string, error) {
	return nil, s.storeErr()
}

func (s failingHierarchyStore) DistinctSubcategories(_ context.Context, _ string) ([]string, error) {
	return nil, s.storeErr()
}

// failingNutritionStore fails every call with a wrapped store error.
type failingNutritionStore struct{}

func (failingNutritionStore) storeErr() error {
	return fmt.Errorf("query: %w: connection refused", domain.ErrStoreUnavailable)
}

func (s failingNutritionStore) List(_ context.Context) ([]domain.NutritionRecord, error) {
	return nil, s.storeErr()
}

func (s failingNutritionStore) FindByName(_ context.Context, _ driven.StringMatch) ([]domain.NutritionRecord, error) {
	return nil, s.storeErr()
}

func (s failingNutritionStore) DistinctNames(_ context.Context) ([]string, error) {
	return nil, s.storeErr()
}
