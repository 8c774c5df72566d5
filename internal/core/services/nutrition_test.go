package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodatlas/foodatlas-cli/internal/adapters/driven/storage/memory"
	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

func seededNutritionStore() *memory.NutritionStore {
	store := memory.NewNutritionStore()
	store.Seed([]domain.NutritionRecord{
		{
			Name:               "POTATO PANCAKE",
			CaloriesPer100Unit: "268",
			CaloriesUnitLabel:  "kcal",
			Servings: []domain.ServingOption{
				{MeasurementUnit: "g", Size: "37", UnitLabel: "piece", UnitCount: "1"},
			},
			DisplayServing: domain.ServingOption{MeasurementUnit: "g", Size: "37", UnitLabel: "piece", UnitCount: "1"},
			// Stale stored value, recomputed on read
			DisplayPortionCalories: 42,
		},
		{
			Name:               "CHICKEN BREAST",
			CaloriesPer100Unit: "165",
			CaloriesUnitLabel:  "kcal",
			DisplayServing:     domain.ServingOption{MeasurementUnit: "g", Size: "120", UnitLabel: "portion", UnitCount: "1"},
		},
		{
			Name:               "MYSTERY MEAT",
			CaloriesPer100Unit: "unknown",
			CaloriesUnitLabel:  "kcal",
			DisplayServing:     domain.ServingOption{MeasurementUnit: "g", Size: "50", UnitLabel: "portion", UnitCount: "1"},
		},
	})
	return store
}

func TestNutritionService_FoodNames(t *testing.T) {
	ctx := context.Background()

	t.Run("returns distinct names sorted", func(t *testing.T) {
		service := NewNutritionService(seededNutritionStore())

		names, err := service.FoodNames(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"CHICKEN BREAST", "MYSTERY MEAT", "POTATO PANCAKE"}, names)
	})

	t.Run("empty store yields empty non-nil slice", func(t *testing.T) {
		service := NewNutritionService(memory.NewNutritionStore())

		names, err := service.FoodNames(ctx)

		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		service := NewNutritionService(failingNutritionStore{})

		_, err := service.FoodNames(ctx)

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestNutritionService_Get(t *testing.T) {
	ctx := context.Background()
	service := NewNutritionService(seededNutritionStore())

	t.Run("matches name case-insensitively and recomputes calories", func(t *testing.T) {
		record, err := service.Get(ctx, "potato pancake")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "POTATO PANCAKE", record.Name)
		// 268/100*37, not the stale stored 42
		assert.InDelta(t, 99.16, record.DisplayPortionCalories, 0.01)
		assert.True(t, record.CaloriesAvailable)
	})

	t.Run("absence is nil without error", func(t *testing.T) {
		record, err := service.Get(ctx, "unobtainium")

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("substring does not match", func(t *testing.T) {
		record, err := service.Get(ctx, "potato")

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("nil servings normalise to empty slice", func(t *testing.T) {
		record, err := service.Get(ctx, "chicken breast")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.NotNil(t, record.Servings)
		assert.Empty(t, record.Servings)
	})

	t.Run("malformed calories keep the record flagged unavailable", func(t *testing.T) {
		record, err := service.Get(ctx, "mystery meat")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.False(t, record.CaloriesAvailable)
		assert.Zero(t, record.DisplayPortionCalories)
	})

	t.Run("duplicate names resolve to the first in store order", func(t *testing.T) {
		store := memory.NewNutritionStore()
		store.Seed([]domain.NutritionRecord{
			{Name: "APPLE", CaloriesPer100Unit: "52", DisplayServing: domain.ServingOption{Size: "100", MeasurementUnit: "g"}},
			{Name: "apple", CaloriesPer100Unit: "99", DisplayServing: domain.ServingOption{Size: "100", MeasurementUnit: "g"}},
		})
		dupService := NewNutritionService(store)

		record, err := dupService.Get(ctx, "Apple")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "APPLE", record.Name)
		assert.InDelta(t, 52, record.DisplayPortionCalories, 0.001)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		failService := NewNutritionService(failingNutritionStore{})

		_, err := failService.Get(ctx, "anything")

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestNutritionService_Search(t *testing.T) {
	ctx := context.Background()
	service := NewNutritionService(seededNutritionStore())

	t.Run("matches substring case-insensitively", func(t *testing.T) {
		records, err := service.Search(ctx, "chicken")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "CHICKEN BREAST", records[0].Name)
		assert.InDelta(t, 198, records[0].DisplayPortionCalories, 0.001)
		assert.True(t, records[0].CaloriesAvailable)
	})

	t.Run("empty keyword returns every record", func(t *testing.T) {
		records, err := service.Search(ctx, "")

		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("parse failures never drop records", func(t *testing.T) {
		records, err := service.Search(ctx, "mystery")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.False(t, records[0].CaloriesAvailable)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		records, err := service.Search(ctx, "sushi")

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}
