package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
)

// mockHierarchyService is a mock implementation of driving.HierarchyService.
type mockHierarchyService struct {
	entries       []domain.HierarchyEntry
	categories    []string
	subcategories []string
	items         []string
	matches       []domain.ItemMatch
	locations     []domain.ItemLocation
	names         []string
	stats         domain.HierarchyStats
	err           error
}

func (m *mockHierarchyService) ListAll(_ context.Context) ([]domain.HierarchyEntry, error) {
	return m.entries, m.err
}

func (m *mockHierarchyService) Categories(_ context.Context) ([]string, error) {
	return m.categories, m.err
}

func (m *mockHierarchyService) Subcategories(_ context.Context, _ string) ([]string, error) {
	return m.subcategories, m.err
}

func (m *mockHierarchyService) FoodItems(_ context.Context, _, _ string) ([]string, error) {
	return m.items, m.err
}

func (m *mockHierarchyService) SearchItems(_ context.Context, _ string) ([]domain.ItemMatch, error) {
	return m.matches, m.err
}

func (m *mockHierarchyService) LocateItem(_ context.Context, _ string) ([]domain.ItemLocation, error) {
	return m.locations, m.err
}

func (m *mockHierarchyService) AllFoodNames(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func (m *mockHierarchyService) Stats(_ context.Context) (domain.HierarchyStats, error) {
	return m.stats, m.err
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(&mockHierarchyService{})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, levelCategories, app.level)
}

func TestNewApp_NilService(t *testing.T) {
	app, err := NewApp(nil)

	assert.ErrorIs(t, err, ErrMissingHierarchyService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(&mockHierarchyService{})

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(&mockHierarchyService{})

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_Update_ListLoaded(t *testing.T) {
	app, _ := NewApp(&mockHierarchyService{})

	msg := listLoaded{level: levelCategories, entries: []string{"Beverages", "Snacks"}}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"Beverages", "Snacks"}, app.entries)
	assert.Equal(t, 0, app.cursor)
}

func TestApp_Update_Navigation(t *testing.T) {
	app, _ := NewApp(&mockHierarchyService{})
	app.Update(listLoaded{level: levelCategories, entries: []string{"A", "B", "C"}})

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.cursor)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	// Cursor stops at the last row
	assert.Equal(t, 2, app.cursor)

	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, app.cursor)
}

func TestApp_Update_DrillIn(t *testing.T) {
	mock := &mockHierarchyService{
		subcategories: []string{"Chips"},
	}
	app, _ := NewApp(mock)
	app.Update(listLoaded{level: levelCategories, entries: []string{"Snacks"}})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, "Snacks", app.category)

	// Running the command loads the subcategories
	msg := cmd()
	loaded, ok := msg.(listLoaded)
	require.True(t, ok)
	assert.Equal(t, levelSubcategories, loaded.level)
	assert.Equal(t, []string{"Chips"}, loaded.entries)
}

func TestApp_Update_SearchFlow(t *testing.T) {
	mock := &mockHierarchyService{
		matches: []domain.ItemMatch{
			{Category: "Snacks", Subcategory: "Chips", Item: "potato chips"},
		},
	}
	app, _ := NewApp(mock)

	// "/" opens the search input
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.True(t, app.searching)

	// Enter submits and runs the search
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, app.searching)

	msg := cmd()
	completed, ok := msg.(searchCompleted)
	require.True(t, ok)
	assert.Len(t, completed.matches, 1)

	app.Update(msg)
	assert.Equal(t, levelSearch, app.level)
}

func TestApp_Update_LoadFailed(t *testing.T) {
	app, _ := NewApp(&mockHierarchyService{})

	app.Update(loadFailed{err: errors.New("store offline")})

	assert.Error(t, app.err)
	assert.Contains(t, app.View(), "store offline")
}

func TestApp_View_ShowsEntries(t *testing.T) {
	app, _ := NewApp(&mockHierarchyService{})
	app.Update(listLoaded{level: levelCategories, entries: []string{"Beverages", "Snacks"}})

	view := app.View()

	assert.Contains(t, view, "Food Categories")
	assert.Contains(t, view, "Beverages")
	assert.Contains(t, view, "Snacks")
}

func TestApp_View_ShowsMatches(t *testing.T) {
	app, _ := NewApp(&mockHierarchyService{})
	app.Update(searchCompleted{
		keyword: "chips",
		matches: []domain.ItemMatch{
			{Category: "Snacks", Subcategory: "Chips", Item: "potato chips"},
		},
	})

	view := app.View()

	assert.Contains(t, view, "1 match(es)")
	assert.Contains(t, view, "potato chips")
}
