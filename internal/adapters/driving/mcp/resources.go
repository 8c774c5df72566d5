package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for foodatlas resources.
	uriScheme = "foodatlas://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the complete hierarchy.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "hierarchy",
		Name:        "hierarchy",
		Description: "The complete food hierarchy dataset",
		MIMEType:    "application/json",
	}, s.handleHierarchyResource)

	// Static resource for the flattened food list.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "foods",
		Name:        "foods",
		Description: "Deduplicated list of all food item names",
		MIMEType:    "application/json",
	}, s.handleFoodsResource)

	// Template for the subcategories of a category.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "categories/{category}/subcategories",
		Name:        "category-subcategories",
		Description: "Subcategories belonging to a specific food category",
		MIMEType:    "application/json",
	}, s.handleSubcategoriesResource)
}

// handleHierarchyResource returns the full hierarchy as JSON.
func (s *Server) handleHierarchyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Hierarchy.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing hierarchy: %w", err)
	}

	infos := make([]HierarchyEntryOutput, len(entries))
	for i, e := range entries {
		items := e.FoodItems
		if items == nil {
			items = []string{}
		}
		infos[i] = HierarchyEntryOutput{
			Category:    e.Category,
			Subcategory: e.Subcategory,
			FoodItems:   items,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling hierarchy: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFoodsResource returns the flattened, deduplicated food list as JSON.
func (s *Server) handleFoodsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	foods, err := s.ports.Hierarchy.AllFoodNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing foods: %w", err)
	}

	data, err := json.MarshalIndent(foods, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling foods: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSubcategoriesResource returns the subcategories of one category.
func (s *Server) handleSubcategoriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract category from URI: foodatlas://categories/{category}/subcategories
	category := extractCategory(req.Params.URI)
	if category == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	subcategories, err := s.ports.Hierarchy.Subcategories(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing subcategories: %w", err)
	}

	data, err := json.MarshalIndent(subcategories, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling subcategories: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCategory extracts the category name from a URI like
// foodatlas://categories/{category}/subcategories.
func extractCategory(uri string) string {
	const prefix = uriScheme + "categories/"
	const suffix = "/subcategories"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
