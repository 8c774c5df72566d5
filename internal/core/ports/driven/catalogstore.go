package driven

import (
	"context"
	"strings"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

// MatchKind selects how a StringMatch compares against stored values.
type MatchKind int

const (
	// MatchExact compares byte-for-byte.
	MatchExact MatchKind = iota

	// MatchExactFold compares the whole string case-insensitively.
	MatchExactFold

	// MatchContainsFold matches a case-insensitive substring. An empty
	// value matches every string.
	MatchContainsFold
)

// StringMatch is a string predicate every catalog store backend must support.
type StringMatch struct {
	Value string
	Kind  MatchKind
}

// Matches reports whether s satisfies the predicate.
func (m StringMatch) Matches(s string) bool {
	switch m.Kind {
	case MatchExactFold:
		return strings.EqualFold(s, m.Value)
	case MatchContainsFold:
		return strings.Contains(strings.ToLower(s), strings.ToLower(m.Value))
	default:
		return s == m.Value
	}
}

// HierarchyFilter restricts a hierarchy lookup. Nil fields are ignored.
type HierarchyFilter struct {
	// Category and Subcategory are exact, case-sensitive equality filters,
	// mirroring hierarchy-key semantics rather than text search.
	Category    *string
	Subcategory *string

	// Item selects entries whose FoodItems contains a matching name.
	Item *StringMatch
}

// MatchesEntry reports whether the entry satisfies every set filter field.
func (f HierarchyFilter) MatchesEntry(e domain.HierarchyEntry) bool {
	if f.Category != nil && e.Category != *f.Category {
		return false
	}
	if f.Subcategory != nil && e.Subcategory != *f.Subcategory {
		return false
	}
	if f.Item != nil {
		found := false
		for _, item := range e.FoodItems {
			if f.Item.Matches(item) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HierarchyStore reads the food hierarchy collection. Implementations are
// read-only from the engine's point of view; any backend failure wraps
// domain.ErrStoreUnavailable.
type HierarchyStore interface {
	// List returns every hierarchy entry in store iteration order.
	List(ctx context.Context) ([]domain.HierarchyEntry, error)

	// Find returns the entries satisfying the filter, in store iteration order.
	Find(ctx context.Context, filter HierarchyFilter) ([]domain.HierarchyEntry, error)

	// DistinctCategories returns the distinct category values, sorted.
	DistinctCategories(ctx context.Context) ([]string, error)

	// DistinctSubcategories returns the distinct subcategory values of
	// entries whose category equals the argument exactly, sorted.
	DistinctSubcategories(ctx context.Context, category string) ([]string, error)
}

// NutritionStore reads the nutrition collection.
type NutritionStore interface {
	// List returns every nutrition record in store iteration order.
	List(ctx context.Context) ([]domain.NutritionRecord, error)

	// FindByName returns the records whose name satisfies the predicate,
	// in store iteration order.
	FindByName(ctx context.Context, match StringMatch) ([]domain.NutritionRecord, error)

	// DistinctNames returns the distinct record names, sorted.
	DistinctNames(ctx context.Context) ([]string, error)
}
