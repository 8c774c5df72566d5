package driving

import (
	"context"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

// NutritionService answers lookup and search queries over the nutrition
// collection. Every returned record has its display-portion calories
// recomputed; stored derived values are never trusted.
type NutritionService interface {
	// FoodNames returns the distinct names of foods with nutrition data, sorted.
	FoodNames(ctx context.Context) ([]string, error)

	// Get returns the record whose name matches case-insensitively
	// (whole-string match). It returns nil without error when no record
	// matches; on duplicate names the first record in store iteration
	// order wins.
	Get(ctx context.Context, name string) (*domain.NutritionRecord, error)

	// Search returns the records whose name contains the keyword
	// case-insensitively. An empty keyword returns every record.
	Search(ctx context.Context, keyword string) ([]domain.NutritionRecord, error)
}
