package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

var nutritionJSON bool

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Nutrition catalog commands",
	Long:  `Commands for querying per-food nutrition records.`,
}

var nutritionNamesCmd = &cobra.Command{
	Use:   "names",
	Short: "List all foods with nutrition data",
	Args:  cobra.NoArgs,
	RunE:  runNutritionNames,
}

var nutritionGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Show the nutrition record for a food",
	Long: `Fetches the nutrition record for the exact food name.
Matching is case-insensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runNutritionGet,
}

var nutritionSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search nutrition records by partial name",
	Args:  cobra.ExactArgs(1),
	RunE:  runNutritionSearch,
}

func init() {
	for _, cmd := range []*cobra.Command{nutritionNamesCmd, nutritionGetCmd, nutritionSearchCmd} {
		cmd.Flags().BoolVar(&nutritionJSON, "json", false, "output as JSON")
		nutritionCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(nutritionCmd)
}

func runNutritionNames(cmd *cobra.Command, _ []string) error {
	if nutritionService == nil {
		return errors.New("nutrition service not configured")
	}

	names, err := nutritionService.FoodNames(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing food names: %w", err)
	}

	if nutritionJSON {
		return printJSON(cmd, names)
	}

	for _, n := range names {
		cmd.Println(n)
	}
	return nil
}

func runNutritionGet(cmd *cobra.Command, args []string) error {
	if nutritionService == nil {
		return errors.New("nutrition service not configured")
	}

	record, err := nutritionService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching nutrition: %w", err)
	}

	if record == nil {
		cmd.Printf("No nutrition data found for %q.\n", args[0])
		return nil
	}

	if nutritionJSON {
		return printJSON(cmd, record)
	}

	printNutritionRecord(cmd, *record)
	return nil
}

func runNutritionSearch(cmd *cobra.Command, args []string) error {
	if nutritionService == nil {
		return errors.New("nutrition service not configured")
	}

	records, err := nutritionService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if nutritionJSON {
		return printJSON(cmd, records)
	}

	if len(records) == 0 {
		cmd.Println("No matches found.")
		return nil
	}
	cmd.Printf("%d match(es):\n\n", len(records))
	for i := range records {
		printNutritionRecord(cmd, records[i])
		cmd.Println()
	}
	return nil
}

func printNutritionRecord(cmd *cobra.Command, r domain.NutritionRecord) {
	cmd.Println(r.Name)
	cmd.Printf("  Calories per 100%s: %s %s\n", displayUnit(r), r.CaloriesPer100Unit, r.CaloriesUnitLabel)

	if r.CaloriesAvailable {
		cmd.Printf("  Display portion:    %s %s (%s %s) = %.2f %s\n",
			r.DisplayServing.Size, r.DisplayServing.MeasurementUnit,
			r.DisplayServing.UnitCount, r.DisplayServing.UnitLabel,
			r.DisplayPortionCalories, r.CaloriesUnitLabel)
	} else {
		cmd.Println("  Display portion:    calories unavailable")
	}

	if r.DisplayServingQualifier != "" {
		cmd.Printf("  Qualifier:          %s\n", r.DisplayServingQualifier)
	}

	for i, s := range r.Servings {
		if !s.IsSet() {
			continue
		}
		cmd.Printf("  Serving %d:          %s %s (%s %s)\n",
			i+1, s.Size, s.MeasurementUnit, s.UnitCount, s.UnitLabel)
	}
}

func displayUnit(r domain.NutritionRecord) string {
	if r.DisplayServing.MeasurementUnit != "" {
		return r.DisplayServing.MeasurementUnit
	}
	return "g/ml"
}
