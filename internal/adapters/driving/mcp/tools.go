package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

// HierarchyEntryOutput is the wire shape of one hierarchy entry.
type HierarchyEntryOutput struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	FoodItems   []string `json:"food_items"`
}

// HierarchyOutput is the output schema for the get_all_food_hierarchy tool.
type HierarchyOutput struct {
	Hierarchy []HierarchyEntryOutput `json:"hierarchy"`
}

// CategoriesOutput is the output schema for the get_categories tool.
type CategoriesOutput struct {
	Categories []string `json:"categories"`
	TotalCount int      `json:"total_count"`
}

// SubcategoriesInput is the input schema for the get_subcategories tool.
type SubcategoriesInput struct {
	Category string `json:"category" jsonschema:"the name of the parent food category"`
}

// SubcategoriesOutput is the output schema for the get_subcategories tool.
type SubcategoriesOutput struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}

// FoodItemsInput is the input schema for the get_food_items tool.
type FoodItemsInput struct {
	Category    string `json:"category" jsonschema:"the top-level food category"`
	Subcategory string `json:"subcategory" jsonschema:"the sub-group inside the category"`
}

// FoodItemsOutput is the output schema for the get_food_items tool.
type FoodItemsOutput struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	FoodItems   []string `json:"food_items"`
}

// SearchFoodInput is the input schema for the search_food tool.
type SearchFoodInput struct {
	Keyword string `json:"keyword" jsonschema:"text to search inside food item names (case-insensitive)"`
}

// ItemMatchOutput is one keyword-search hit.
type ItemMatchOutput struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Item        string `json:"item"`
}

// SearchFoodOutput is the output schema for the search_food tool.
type SearchFoodOutput struct {
	Keyword      string            `json:"keyword"`
	Results      []ItemMatchOutput `json:"results"`
	TotalMatches int               `json:"total_matches"`
}

// FindCategoryInput is the input schema for the find_food_category tool.
type FindCategoryInput struct {
	Item string `json:"item" jsonschema:"a food name to look up (case-insensitive exact match)"`
}

// ItemLocationOutput is one hierarchy position of a food item.
type ItemLocationOutput struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// FindCategoryOutput is the output schema for the find_food_category tool.
type FindCategoryOutput struct {
	Item    string               `json:"item"`
	Matches []ItemLocationOutput `json:"matches"`
}

// AllFoodsOutput is the output schema for the list_all_foods tool.
type AllFoodsOutput struct {
	Foods []string `json:"foods"`
}

// FoodStatsOutput is the output schema for the food_stats tool.
type FoodStatsOutput struct {
	TotalCategories            int     `json:"total_categories"`
	TotalSubcategories         int     `json:"total_subcategories"`
	AverageItemsPerSubcategory float64 `json:"average_items_per_subcategory"`
	MaxItemsInSubcategory      int     `json:"max_items_in_subcategory"`
	MinItemsInSubcategory      int     `json:"min_items_in_subcategory"`
}

// FoodNamesOutput is the output schema for the list_food_names tool.
type FoodNamesOutput struct {
	FoodNames  []string `json:"food_names"`
	TotalCount int      `json:"total_count"`
}

// GetNutritionInput is the input schema for the get_food_nutrition tool.
type GetNutritionInput struct {
	Name string `json:"name" jsonschema:"the exact name of the food item (case-insensitive)"`
}

// ServingOutput is the wire shape of one serving slot. All fields empty
// means the slot is unset.
type ServingOutput struct {
	MeasurementUnit string `json:"measurement_unit"`
	Size            string `json:"size"`
	UnitLabel       string `json:"unit_label"`
	UnitCount       string `json:"unit_count"`
}

// NutritionOutput is the wire shape of a normalised nutrition record.
type NutritionOutput struct {
	Name                    string          `json:"name"`
	CaloriesPer100Unit      string          `json:"calories_100g_ml"`
	CaloriesUnitLabel       string          `json:"unit_calories_100g_ml"`
	Servings                []ServingOutput `json:"servings"`
	DisplayServing          ServingOutput   `json:"display_serving"`
	DisplayServingQualifier string          `json:"display_serving_qualifier"`
	DisplayPortionCalories  float64         `json:"display_portion_calories"`
	CaloriesAvailable       bool            `json:"calories_available"`
}

// GetNutritionOutput is the output schema for the get_food_nutrition tool.
type GetNutritionOutput struct {
	RequestedName string           `json:"requested_name"`
	Found         bool             `json:"found"`
	Nutrition     *NutritionOutput `json:"nutrition,omitempty"`
}

// SearchNutritionInput is the input schema for the search_food_nutrition tool.
type SearchNutritionInput struct {
	Keyword string `json:"keyword" jsonschema:"the partial name of the food item to search for"`
}

// SearchNutritionOutput is the output schema for the search_food_nutrition tool.
type SearchNutritionOutput struct {
	SearchKeyword string            `json:"search_keyword"`
	Results       []NutritionOutput `json:"results"`
	TotalMatches  int               `json:"total_matches"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_all_food_hierarchy",
		Description: "Return the complete food hierarchy dataset with category → subcategory → food_items mappings",
	}, s.handleAllHierarchy)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_categories",
		Description: "Return a list of all food categories",
	}, s.handleCategories)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_subcategories",
		Description: "Return all subcategories for a given food category",
	}, s.handleSubcategories)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_food_items",
		Description: "Return all food items for a given category and subcategory",
	}, s.handleFoodItems)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_food",
		Description: "Search food items by keyword (case-insensitive partial matching)",
	}, s.handleSearchFood)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_food_category",
		Description: "Find the category and subcategory for a specific food item",
	}, s.handleFindCategory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_all_foods",
		Description: "Return a deduplicated, flattened list of all food item names across the hierarchy",
	}, s.handleAllFoods)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "food_stats",
		Description: "Return high-level statistics about the food hierarchy dataset",
	}, s.handleFoodStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_food_names",
		Description: "Return the names of all foods that have nutrition data available",
	}, s.handleFoodNames)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_food_nutrition",
		Description: "Fetch complete nutritional information for a food item by exact name",
	}, s.handleGetNutrition)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_food_nutrition",
		Description: "Search food nutrition entries by partial match (case-insensitive)",
	}, s.handleSearchNutrition)
}

// handleAllHierarchy handles the get_all_food_hierarchy tool invocation.
func (s *Server) handleAllHierarchy(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, HierarchyOutput, error) {
	entries, err := s.ports.Hierarchy.ListAll(ctx)
	if err != nil {
		return nil, HierarchyOutput{}, err
	}

	output := HierarchyOutput{Hierarchy: make([]HierarchyEntryOutput, len(entries))}
	for i, e := range entries {
		items := e.FoodItems
		if items == nil {
			items = []string{}
		}
		output.Hierarchy[i] = HierarchyEntryOutput{
			Category:    e.Category,
			Subcategory: e.Subcategory,
			FoodItems:   items,
		}
	}

	return nil, output, nil
}

// handleCategories handles the get_categories tool invocation.
func (s *Server) handleCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CategoriesOutput, error) {
	categories, err := s.ports.Hierarchy.Categories(ctx)
	if err != nil {
		return nil, CategoriesOutput{}, err
	}

	return nil, CategoriesOutput{
		Categories: categories,
		TotalCount: len(categories),
	}, nil
}

// handleSubcategories handles the get_subcategories tool invocation.
func (s *Server) handleSubcategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SubcategoriesInput,
) (*mcp.CallToolResult, SubcategoriesOutput, error) {
	subcategories, err := s.ports.Hierarchy.Subcategories(ctx, input.Category)
	if err != nil {
		return nil, SubcategoriesOutput{}, err
	}

	return nil, SubcategoriesOutput{
		Category:      input.Category,
		Subcategories: subcategories,
	}, nil
}

// handleFoodItems handles the get_food_items tool invocation.
func (s *Server) handleFoodItems(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FoodItemsInput,
) (*mcp.CallToolResult, FoodItemsOutput, error) {
	items, err := s.ports.Hierarchy.FoodItems(ctx, input.Category, input.Subcategory)
	if err != nil {
		return nil, FoodItemsOutput{}, err
	}

	return nil, FoodItemsOutput{
		Category:    input.Category,
		Subcategory: input.Subcategory,
		FoodItems:   items,
	}, nil
}

// handleSearchFood handles the search_food tool invocation.
func (s *Server) handleSearchFood(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFoodInput,
) (*mcp.CallToolResult, SearchFoodOutput, error) {
	matches, err := s.ports.Hierarchy.SearchItems(ctx, input.Keyword)
	if err != nil {
		return nil, SearchFoodOutput{}, err
	}

	output := SearchFoodOutput{
		Keyword:      input.Keyword,
		Results:      make([]ItemMatchOutput, len(matches)),
		TotalMatches: len(matches),
	}
	for i, m := range matches {
		output.Results[i] = ItemMatchOutput{
			Category:    m.Category,
			Subcategory: m.Subcategory,
			Item:        m.Item,
		}
	}

	return nil, output, nil
}

// handleFindCategory handles the find_food_category tool invocation.
func (s *Server) handleFindCategory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindCategoryInput,
) (*mcp.CallToolResult, FindCategoryOutput, error) {
	locations, err := s.ports.Hierarchy.LocateItem(ctx, input.Item)
	if err != nil {
		return nil, FindCategoryOutput{}, err
	}

	output := FindCategoryOutput{
		Item:    input.Item,
		Matches: make([]ItemLocationOutput, len(locations)),
	}
	for i, loc := range locations {
		output.Matches[i] = ItemLocationOutput{
			Category:    loc.Category,
			Subcategory: loc.Subcategory,
		}
	}

	return nil, output, nil
}

// handleAllFoods handles the list_all_foods tool invocation.
func (s *Server) handleAllFoods(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, AllFoodsOutput, error) {
	foods, err := s.ports.Hierarchy.AllFoodNames(ctx)
	if err != nil {
		return nil, AllFoodsOutput{}, err
	}

	return nil, AllFoodsOutput{Foods: foods}, nil
}

// handleFoodStats handles the food_stats tool invocation.
func (s *Server) handleFoodStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FoodStatsOutput, error) {
	stats, err := s.ports.Hierarchy.Stats(ctx)
	if err != nil {
		return nil, FoodStatsOutput{}, err
	}

	return nil, FoodStatsOutput{
		TotalCategories:            stats.TotalCategories,
		TotalSubcategories:         stats.TotalSubcategories,
		AverageItemsPerSubcategory: stats.AvgItemsPerSubcategory,
		MaxItemsInSubcategory:      stats.MaxItemsInSubcategory,
		MinItemsInSubcategory:      stats.MinItemsInSubcategory,
	}, nil
}

// handleFoodNames handles the list_food_names tool invocation.
func (s *Server) handleFoodNames(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FoodNamesOutput, error) {
	names, err := s.ports.Nutrition.FoodNames(ctx)
	if err != nil {
		return nil, FoodNamesOutput{}, err
	}

	return nil, FoodNamesOutput{
		FoodNames:  names,
		TotalCount: len(names),
	}, nil
}

// handleGetNutrition handles the get_food_nutrition tool invocation.
func (s *Server) handleGetNutrition(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetNutritionInput,
) (*mcp.CallToolResult, GetNutritionOutput, error) {
	record, err := s.ports.Nutrition.Get(ctx, input.Name)
	if err != nil {
		return nil, GetNutritionOutput{}, err
	}

	output := GetNutritionOutput{RequestedName: input.Name}
	if record != nil {
		output.Found = true
		nutrition := toNutritionOutput(*record)
		output.Nutrition = &nutrition
	}

	return nil, output, nil
}

// handleSearchNutrition handles the search_food_nutrition tool invocation.
func (s *Server) handleSearchNutrition(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchNutritionInput,
) (*mcp.CallToolResult, SearchNutritionOutput, error) {
	records, err := s.ports.Nutrition.Search(ctx, input.Keyword)
	if err != nil {
		return nil, SearchNutritionOutput{}, err
	}

	output := SearchNutritionOutput{
		SearchKeyword: input.Keyword,
		Results:       make([]NutritionOutput, len(records)),
		TotalMatches:  len(records),
	}
	for i := range records {
		output.Results[i] = toNutritionOutput(records[i])
	}

	return nil, output, nil
}

func toServingOutput(s domain.ServingOption) ServingOutput {
	return ServingOutput{
		MeasurementUnit: s.MeasurementUnit,
		Size:            s.Size,
		UnitLabel:       s.UnitLabel,
		UnitCount:       s.UnitCount,
	}
}

func toNutritionOutput(r domain.NutritionRecord) NutritionOutput {
	servings := make([]ServingOutput, len(r.Servings))
	for i, s := range r.Servings {
		servings[i] = toServingOutput(s)
	}

	return NutritionOutput{
		Name:                    r.Name,
		CaloriesPer100Unit:      r.CaloriesPer100Unit,
		CaloriesUnitLabel:       r.CaloriesUnitLabel,
		Servings:                servings,
		DisplayServing:          toServingOutput(r.DisplayServing),
		DisplayServingQualifier: r.DisplayServingQualifier,
		DisplayPortionCalories:  r.DisplayPortionCalories,
		CaloriesAvailable:       r.CaloriesAvailable,
	}
}
