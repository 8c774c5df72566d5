package services

import (
	"context"
	"fmt"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driven"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driving"
	"github.com/foodatlas/foodatlas-cli/internal/logger"
)

// Ensure NutritionService implements the interface.
var _ driving.NutritionService = (*NutritionService)(nil)

// NutritionService answers lookup and search queries over the nutrition
// collection. Every record it returns passes the same normalisation pass:
// the display-portion calories are recomputed from the raw numeric strings
// so results stay self-consistent even if the stored value is stale.
type NutritionService struct {
	store driven.NutritionStore
}

// NewNutritionService creates a new nutrition query service.
func NewNutritionService(store driven.NutritionStore) *NutritionService {
	return &NutritionService{store: store}
}

// FoodNames returns the distinct names of foods with nutrition data, sorted.
func (s *NutritionService) FoodNames(ctx context.Context) ([]string, error) {
	names, err := s.store.DistinctNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food names: %w", err)
	}

	logger.Debug("Nutrition names: %d", len(names))

	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Get returns the record whose name matches case-insensitively as a whole
// string. Absence is nil without error. Duplicate names are a data-quality
// edge case, not a protocol error: the first record in store iteration
// order wins.
func (s *NutritionService) Get(ctx context.Context, name string) (*domain.NutritionRecord, error) {
	records, err := s.store.FindByName(ctx, driven.StringMatch{
		Value: name,
		Kind:  driven.MatchExactFold,
	})
	if err != nil {
		return nil, fmt.Errorf("get nutrition %q: %w", name, err)
	}

	if len(records) == 0 {
		logger.Debug("No nutrition record for %q", name)
		return nil, nil
	}
	if len(records) > 1 {
		logger.Warn("%d nutrition records share name %q, using the first", len(records), name)
	}

	record := records[0]
	s.normalise(&record)
	return &record, nil
}

// Search returns the records whose name contains the keyword
// case-insensitively. An empty keyword returns every record.
func (s *NutritionService) Search(ctx context.Context, keyword string) ([]domain.NutritionRecord, error) {
	records, err := s.store.FindByName(ctx, driven.StringMatch{
		Value: keyword,
		Kind:  driven.MatchContainsFold,
	})
	if err != nil {
		return nil, fmt.Errorf("search nutrition %q: %w", keyword, err)
	}

	results := make([]domain.NutritionRecord, len(records))
	for i := range records {
		results[i] = records[i]
		s.normalise(&results[i])
	}

	logger.Debug("Nutrition search %q: %d matches", keyword, len(results))
	return results, nil
}

// normalise recomputes the derived calorie fields. A malformed numeric
// string is a field-scoped parse failure: the record is kept and flagged
// as calories-unavailable rather than dropped.
func (s *NutritionService) normalise(record *domain.NutritionRecord) {
	if record.Servings == nil {
		record.Servings = []domain.ServingOption{}
	}

	calories, err := record.ComputeDisplayCalories()
	if err != nil {
		logger.Warn("Nutrition %q: %v", record.Name, err)
		record.DisplayPortionCalories = 0
		record.CaloriesAvailable = false
		return
	}

	record.DisplayPortionCalories = calories
	record.CaloriesAvailable = true
}
