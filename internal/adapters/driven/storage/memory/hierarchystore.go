package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driven"
)

// Ensure HierarchyStore implements the interface.
var _ driven.HierarchyStore = (*HierarchyStore)(nil)

// HierarchyStore is an in-memory implementation of driven.HierarchyStore.
// Iteration order is insertion order.
type HierarchyStore struct {
	mu      sync.RWMutex
	entries []domain.HierarchyEntry
}

// NewHierarchyStore creates a new in-memory hierarchy store.
func NewHierarchyStore() *HierarchyStore {
	return &HierarchyStore{}
}

// Put appends an entry to the store. Not part of the driven port; the
// engine never writes.
func (s *HierarchyStore) Put(entry domain.HierarchyEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// Seed replaces the store contents.
func (s *HierarchyStore) Seed(entries []domain.HierarchyEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]domain.HierarchyEntry(nil), entries...)
}

// List returns every entry in insertion order.
func (s *HierarchyStore) List(_ context.Context) ([]domain.HierarchyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.HierarchyEntry(nil), s.entries...), nil
}

// Find returns the entries satisfying the filter, in insertion order.
func (s *HierarchyStore) Find(_ context.Context, filter driven.HierarchyFilter) ([]domain.HierarchyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.HierarchyEntry
	for _, e := range s.entries {
		if filter.MatchesEntry(e) {
			result = append(result, e)
		}
	}
	return result, nil
}

// DistinctCategories returns the distinct category values, sorted.
func (s *HierarchyStore) DistinctCategories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, e := range s.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// DistinctSubcategories returns the distinct subcategory values of entries
// whose category matches exactly, sorted.
func (s *HierarchyStore) DistinctSubcategories(_ context.Context, category string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var subcategories []string
	for _, e := range s.entries {
		if e.Category != category {
			continue
		}
		if !seen[e.Subcategory] {
			seen[e.Subcategory] = true
			subcategories = append(subcategories, e.Subcategory)
		}
	}
	sort.Strings(subcategories)
	return subcategories, nil
}
