package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driven"
)

// Ensure NutritionStore implements the interface.
var _ driven.NutritionStore = (*NutritionStore)(nil)

// NutritionStore is an in-memory implementation of driven.NutritionStore.
// Iteration order is insertion order.
type NutritionStore struct {
	mu      sync.RWMutex
	records []domain.NutritionRecord
}

// NewNutritionStore creates a new in-memory nutrition store.
func NewNutritionStore() *NutritionStore {
	return &NutritionStore{}
}

// Put appends a record to the store. Not part of the driven port; the
// engine never writes.
func (s *NutritionStore) Put(record domain.NutritionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// Seed replaces the store contents.
func (s *NutritionStore) Seed(records []domain.NutritionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.NutritionRecord(nil), records...)
}

// List returns every record in insertion order.
func (s *NutritionStore) List(_ context.Context) ([]domain.NutritionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.NutritionRecord(nil), s.records...), nil
}

// FindByName returns the records whose name satisfies the predicate, in
// insertion order.
func (s *NutritionStore) FindByName(_ context.Context, match driven.StringMatch) ([]domain.NutritionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.NutritionRecord
	for _, r := range s.records {
		if match.Matches(r.Name) {
			result = append(result, r)
		}
	}
	return result, nil
}

// DistinctNames returns the distinct record names, sorted.
func (s *NutritionStore) DistinctNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for _, r := range s.records {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}
