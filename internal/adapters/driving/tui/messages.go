package tui

import (
	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

// level identifies which slice of the hierarchy the list is showing.
type level int

const (
	levelCategories level = iota
	levelSubcategories
	levelItems
	levelSearch
)

// listLoaded carries the entries for the active level.
type listLoaded struct {
	level   level
	entries []string
}

// searchCompleted carries keyword search results.
type searchCompleted struct {
	keyword string
	matches []domain.ItemMatch
}

// loadFailed carries a query error back to the model.
type loadFailed struct {
	err error
}
