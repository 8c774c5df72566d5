package domain

import "strconv"

// MaxServings is the number of serving slots a nutrition record carries.
const MaxServings = 5

// ServingOption is one way of expressing a portion size. A slot is either
// fully set or fully unset (every field empty); unset slots are preserved
// as-is when a record is echoed back.
type ServingOption struct {
	// MeasurementUnit is "g", "ml", or empty when the slot is unset.
	MeasurementUnit string

	// Size is the serving weight or volume as a numeric string.
	Size string

	// UnitLabel classifies the serving (piece, portion, cup, tablespoon, slice).
	UnitLabel string

	// UnitCount is the number of units in the serving, usually "1".
	UnitCount string
}

// IsSet reports whether the serving slot carries a value.
func (s ServingOption) IsSet() bool {
	return s.MeasurementUnit != "" || s.Size != "" || s.UnitLabel != "" || s.UnitCount != ""
}

// NutritionRecord holds calorie and serving data for one named food item.
// Name is the lookup key and is expected to be case-insensitively unique
// within the dataset, though the engine tolerates duplicates.
type NutritionRecord struct {
	Name string

	// CaloriesPer100Unit is calories per 100 g or 100 ml, stored as a
	// numeric string. Parsed wherever arithmetic is needed.
	CaloriesPer100Unit string

	// CaloriesUnitLabel is the calorie unit, conventionally "kcal".
	CaloriesUnitLabel string

	// Servings holds up to MaxServings alternative serving definitions.
	Servings []ServingOption

	// DisplayServing is the canonical serving shown by default.
	DisplayServing ServingOption

	// DisplayServingQualifier is an optional descriptor such as "small"
	// or "sliced". Empty means no qualifier.
	DisplayServingQualifier string

	// DisplayPortionCalories is derived on read from CaloriesPer100Unit
	// and DisplayServing.Size. Stored values are never trusted.
	DisplayPortionCalories float64

	// CaloriesAvailable is false when a numeric field failed to parse,
	// in which case DisplayPortionCalories is meaningless. The record is
	// still returned.
	CaloriesAvailable bool
}

// ComputeDisplayCalories derives the display-portion calories as
// (CaloriesPer100Unit / 100) * DisplayServing.Size. A malformed numeric
// string yields a ParseError scoped to the offending field.
func (r *NutritionRecord) ComputeDisplayCalories() (float64, error) {
	per100, err := strconv.ParseFloat(r.CaloriesPer100Unit, 64)
	if err != nil {
		return 0, &ParseError{Field: "caloriesPer100Unit", Value: r.CaloriesPer100Unit, Err: err}
	}

	size, err := strconv.ParseFloat(r.DisplayServing.Size, 64)
	if err != nil {
		return 0, &ParseError{Field: "displayServing.size", Value: r.DisplayServing.Size, Err: err}
	}

	return per100 / 100 * size, nil
}
