package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var hierarchyJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all food categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var subcategoriesCmd = &cobra.Command{
	Use:   "subcategories [category]",
	Short: "List the subcategories of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubcategories,
}

var itemsCmd = &cobra.Command{
	Use:   "items [category] [subcategory]",
	Short: "List the food items under a category/subcategory pair",
	Args:  cobra.ExactArgs(2),
	RunE:  runItems,
}

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search food items by keyword",
	Long: `Searches food item names across the whole hierarchy.
Matching is case-insensitive and matches anywhere in the item name.
An empty keyword matches every item.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var locateCmd = &cobra.Command{
	Use:   "locate [item]",
	Short: "Find which category and subcategory a food item belongs to",
	Long: `Looks up the exact food item name (case-insensitive) and prints every
hierarchy position it appears in.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List every distinct food item name in the hierarchy",
	Args:  cobra.NoArgs,
	RunE:  runFoods,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the food hierarchy",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	for _, cmd := range []*cobra.Command{
		categoriesCmd, subcategoriesCmd, itemsCmd,
		searchCmd, locateCmd, foodsCmd, statsCmd,
	} {
		cmd.Flags().BoolVar(&hierarchyJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(cmd)
	}
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	categories, err := hierarchyService.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	if hierarchyJSON {
		return printJSON(cmd, categories)
	}

	if len(categories) == 0 {
		cmd.Println("No categories found.")
		return nil
	}
	for _, c := range categories {
		cmd.Println(c)
	}
	return nil
}

func runSubcategories(cmd *cobra.Command, args []string) error {
	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	subcategories, err := hierarchyService.Subcategories(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("listing subcategories: %w", err)
	}

	if hierarchyJSON {
		return printJSON(cmd, subcategories)
	}

	if len(subcategories) == 0 {
		cmd.Printf("No subcategories found for %q.\n", args[0])
		return nil
	}
	for _, s := range subcategories {
		cmd.Println(s)
	}
	return nil
}

func runItems(cmd *cobra.Command, args []string) error {
	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	items, err := hierarchyService.FoodItems(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("listing food items: %w", err)
	}

	if hierarchyJSON {
		return printJSON(cmd, items)
	}

	if len(items) == 0 {
		cmd.Printf("No food items found for %q / %q.\n", args[0], args[1])
		return nil
	}
	for _, item := range items {
		cmd.Println(item)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	matches, err := hierarchyService.SearchItems(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if hierarchyJSON {
		return printJSON(cmd, matches)
	}

	if len(matches) == 0 {
		cmd.Println("No matches found.")
		return nil
	}
	cmd.Printf("%d match(es):\n", len(matches))
	for _, m := range matches {
		cmd.Printf("  %s  (%s > %s)\n", m.Item, m.Category, m.Subcategory)
	}
	return nil
}

func runLocate(cmd *cobra.Command, args []string) error {
	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	locations, err := hierarchyService.LocateItem(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("locating item: %w", err)
	}

	if hierarchyJSON {
		return printJSON(cmd, locations)
	}

	if len(locations) == 0 {
		cmd.Printf("%q was not found in the hierarchy.\n", args[0])
		return nil
	}
	for _, loc := range locations {
		cmd.Printf("%s > %s\n", loc.Category, loc.Subcategory)
	}
	return nil
}

func runFoods(cmd *cobra.Command, _ []string) error {
	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	foods, err := hierarchyService.AllFoodNames(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing foods: %w", err)
	}

	if hierarchyJSON {
		return printJSON(cmd, foods)
	}

	for _, f := range foods {
		cmd.Println(f)
	}
	return nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	stats, err := hierarchyService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	if hierarchyJSON {
		return printJSON(cmd, stats)
	}

	cmd.Printf("Categories:               %d\n", stats.TotalCategories)
	cmd.Printf("Subcategories:            %d\n", stats.TotalSubcategories)
	cmd.Printf("Avg items/subcategory:    %.2f\n", stats.AvgItemsPerSubcategory)
	cmd.Printf("Max items in subcategory: %d\n", stats.MaxItemsInSubcategory)
	cmd.Printf("Min items in subcategory: %d\n", stats.MinItemsInSubcategory)
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
