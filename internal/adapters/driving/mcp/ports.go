package mcp

import (
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Hierarchy answers food hierarchy queries.
	Hierarchy driving.HierarchyService

	// Nutrition answers nutrition queries.
	Nutrition driving.NutritionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Hierarchy == nil {
		return ErrMissingHierarchyService
	}
	if p.Nutrition == nil {
		return ErrMissingNutritionService
	}
	return nil
}
