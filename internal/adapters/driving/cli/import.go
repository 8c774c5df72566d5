package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load catalog datasets into the local store",
	Long: `Commands for loading catalog datasets into the local SQLite store.

Import replaces the existing contents of the target table. The input
files use the upstream dataset's JSON export format.`,
}

var importHierarchyCmd = &cobra.Command{
	Use:   "hierarchy [file]",
	Short: "Import a food hierarchy JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportHierarchy,
}

var importNutritionCmd = &cobra.Command{
	Use:   "nutrition [file]",
	Short: "Import a food nutrition JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportNutrition,
}

func init() {
	importCmd.AddCommand(importHierarchyCmd)
	importCmd.AddCommand(importNutritionCmd)
	rootCmd.AddCommand(importCmd)
}

// hierarchyDoc is the upstream export shape of one hierarchy row.
type hierarchyDoc struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	FoodItems   []string `json:"food_items"`
}

// nutritionDoc is the upstream export shape of one nutrition row. The
// five serving slots are flattened into numbered fields.
type nutritionDoc struct {
	Name                string  `json:"name"`
	UnitCalories100gml  string  `json:"unitCalories100gml"`
	Calories100Gml      string  `json:"calories100Gml"`
	Serving1MlG         string  `json:"serving1MlG"`
	Serving1Size        string  `json:"serving1Size"`
	Serving1Unit        string  `json:"serving1Unit"`
	Serving1UnitNumber  string  `json:"serving1UnitNumber"`
	Serving2MlG         string  `json:"serving2MlG"`
	Serving2Size        string  `json:"serving2Size"`
	Serving2Unit        string  `json:"serving2Unit"`
	Serving2UnitNumber  string  `json:"serving2UnitNumber"`
	Serving3MlG         string  `json:"serving3MlG"`
	Serving3Size        string  `json:"serving3Size"`
	Serving3Unit        string  `json:"serving3Unit"`
	Serving3UnitNumber  string  `json:"serving3UnitNumber"`
	Serving4MlG         string  `json:"serving4MlG"`
	Serving4Size        string  `json:"serving4Size"`
	Serving4Unit        string  `json:"serving4Unit"`
	Serving4UnitNumber  string  `json:"serving4UnitNumber"`
	Serving5MlG         string  `json:"serving5MlG"`
	Serving5Size        string  `json:"serving5Size"`
	Serving5Unit        string  `json:"serving5Unit"`
	Serving5UnitNumber  string  `json:"serving5UnitNumber"`
	DisplayPortionCal   float64 `json:"displayPortionCalories"`
	DisplayServingMlG   string  `json:"displayServingMlG"`
	DisplayServingSize  string  `json:"displayServingSize"`
	DisplayServingUnit  string  `json:"displayServingUnit"`
	DisplayServingCount string  `json:"displayServingUnitNumber"`
	DisplayServingOpt   string  `json:"displayServingUnitOption"`
}

func runImportHierarchy(cmd *cobra.Command, args []string) error {
	if catalogStore == nil {
		return errors.New("catalog store not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var docs []hierarchyDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	entries := make([]domain.HierarchyEntry, len(docs))
	for i, d := range docs {
		items := d.FoodItems
		if items == nil {
			items = []string{}
		}
		entries[i] = domain.HierarchyEntry{
			Category:    d.Category,
			Subcategory: d.Subcategory,
			FoodItems:   items,
		}
	}

	logger.Debug("importing %d hierarchy entries from %s", len(entries), args[0])
	if err := catalogStore.ImportHierarchy(cmd.Context(), entries); err != nil {
		return fmt.Errorf("importing hierarchy: %w", err)
	}

	cmd.Printf("Imported %d hierarchy entries.\n", len(entries))
	return nil
}

func runImportNutrition(cmd *cobra.Command, args []string) error {
	if catalogStore == nil {
		return errors.New("catalog store not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var docs []nutritionDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	records := make([]domain.NutritionRecord, len(docs))
	for i := range docs {
		records[i] = toNutritionRecord(docs[i])
	}

	logger.Debug("importing %d nutrition records from %s", len(records), args[0])
	if err := catalogStore.ImportNutrition(cmd.Context(), records); err != nil {
		return fmt.Errorf("importing nutrition: %w", err)
	}

	cmd.Printf("Imported %d nutrition records.\n", len(records))
	return nil
}

// toNutritionRecord folds the flattened serving slots into the serving
// list, dropping the imported display calories: they get recomputed
// from the raw values on every read.
func toNutritionRecord(d nutritionDoc) domain.NutritionRecord {
	servings := []domain.ServingOption{
		{MeasurementUnit: d.Serving1MlG, Size: d.Serving1Size, UnitLabel: d.Serving1Unit, UnitCount: d.Serving1UnitNumber},
		{MeasurementUnit: d.Serving2MlG, Size: d.Serving2Size, UnitLabel: d.Serving2Unit, UnitCount: d.Serving2UnitNumber},
		{MeasurementUnit: d.Serving3MlG, Size: d.Serving3Size, UnitLabel: d.Serving3Unit, UnitCount: d.Serving3UnitNumber},
		{MeasurementUnit: d.Serving4MlG, Size: d.Serving4Size, UnitLabel: d.Serving4Unit, UnitCount: d.Serving4UnitNumber},
		{MeasurementUnit: d.Serving5MlG, Size: d.Serving5Size, UnitLabel: d.Serving5Unit, UnitCount: d.Serving5UnitNumber},
	}

	kept := make([]domain.ServingOption, 0, domain.MaxServings)
	for _, s := range servings {
		if s.IsSet() {
			kept = append(kept, s)
		}
	}

	return domain.NutritionRecord{
		Name:               d.Name,
		CaloriesPer100Unit: d.Calories100Gml,
		CaloriesUnitLabel:  d.UnitCalories100gml,
		Servings:           kept,
		DisplayServing: domain.ServingOption{
			MeasurementUnit: d.DisplayServingMlG,
			Size:            d.DisplayServingSize,
			UnitLabel:       d.DisplayServingUnit,
			UnitCount:       d.DisplayServingCount,
		},
		DisplayServingQualifier: d.DisplayServingOpt,
	}
}
