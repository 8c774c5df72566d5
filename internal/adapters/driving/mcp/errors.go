// Package mcp provides an MCP (Model Context Protocol) server adapter for
// foodatlas. It lets AI assistants query the food hierarchy and nutrition
// catalog through structured tools.
package mcp

import "errors"

var (
	// ErrMissingHierarchyService is returned when the hierarchy service is not provided.
	ErrMissingHierarchyService = errors.New("mcp: hierarchy service is required")

	// ErrMissingNutritionService is returned when the nutrition service is not provided.
	ErrMissingNutritionService = errors.New("mcp: nutrition service is required")
)
