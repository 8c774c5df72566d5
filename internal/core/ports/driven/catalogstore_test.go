package driven

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

func TestStringMatch_Matches(t *testing.T) {
	tests := []struct {
		name     string
		match    StringMatch
		input    string
		expected bool
	}{
		{
			name:     "exact match is case-sensitive",
			match:    StringMatch{Value: "Apple", Kind: MatchExact},
			input:    "apple",
			expected: false,
		},
		{
			name:     "exact match equal strings",
			match:    StringMatch{Value: "Apple", Kind: MatchExact},
			input:    "Apple",
			expected: true,
		},
		{
			name:     "exact fold ignores case",
			match:    StringMatch{Value: "POTATO PANCAKE", Kind: MatchExactFold},
			input:    "potato pancake",
			expected: true,
		},
		{
			name:     "exact fold rejects substring",
			match:    StringMatch{Value: "potato", Kind: MatchExactFold},
			input:    "potato pancake",
			expected: false,
		},
		{
			name:     "contains fold matches anywhere",
			match:    StringMatch{Value: "FRIES", Kind: MatchContainsFold},
			input:    "curly fries",
			expected: true,
		},
		{
			name:     "contains fold rejects non-substring",
			match:    StringMatch{Value: "burger", Kind: MatchContainsFold},
			input:    "curly fries",
			expected: false,
		},
		{
			name:     "empty contains value matches everything",
			match:    StringMatch{Value: "", Kind: MatchContainsFold},
			input:    "anything at all",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.match.Matches(tt.input))
		})
	}
}

func TestHierarchyFilter_MatchesEntry(t *testing.T) {
	entry := domain.HierarchyEntry{
		Category:    "Fast Food",
		Subcategory: "Fries",
		FoodItems:   []string{"curly fries", "waffle fries"},
	}

	strPtr := func(s string) *string { return &s }

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.True(t, HierarchyFilter{}.MatchesEntry(entry))
	})

	t.Run("category filter is exact and case-sensitive", func(t *testing.T) {
		assert.True(t, HierarchyFilter{Category: strPtr("Fast Food")}.MatchesEntry(entry))
		assert.False(t, HierarchyFilter{Category: strPtr("fast food")}.MatchesEntry(entry))
	})

	t.Run("category and subcategory combine", func(t *testing.T) {
		filter := HierarchyFilter{
			Category:    strPtr("Fast Food"),
			Subcategory: strPtr("Fries"),
		}
		assert.True(t, filter.MatchesEntry(entry))

		filter.Subcategory = strPtr("Burgers")
		assert.False(t, filter.MatchesEntry(entry))
	})

	t.Run("item filter matches any food item", func(t *testing.T) {
		filter := HierarchyFilter{
			Item: &StringMatch{Value: "WAFFLE FRIES", Kind: MatchExactFold},
		}
		assert.True(t, filter.MatchesEntry(entry))

		filter.Item = &StringMatch{Value: "onion rings", Kind: MatchExactFold}
		assert.False(t, filter.MatchesEntry(entry))
	})

	t.Run("item filter on empty entry never matches", func(t *testing.T) {
		empty := domain.HierarchyEntry{Category: "Empty", Subcategory: "None"}
		filter := HierarchyFilter{
			Item: &StringMatch{Value: "", Kind: MatchContainsFold},
		}
		assert.False(t, filter.MatchesEntry(empty))
	})
}
