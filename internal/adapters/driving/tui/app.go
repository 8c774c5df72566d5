// Package tui provides an interactive terminal browser for the food
// catalog, built on Bubbletea following the Elm architecture.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driving"
)

// ErrMissingHierarchyService is returned when no hierarchy service is provided.
var ErrMissingHierarchyService = errors.New("tui: hierarchy service is required")

// App is the catalog browser model. It implements tea.Model for use
// with Bubbletea.
type App struct {
	// hierarchy answers catalog queries.
	hierarchy driving.HierarchyService

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *Styles

	// level tracks which slice of the hierarchy is showing.
	level level

	// category and subcategory are the current drill-down position.
	category    string
	subcategory string

	// entries are the rows of the active list.
	entries []string

	// matches are the current search results.
	matches []domain.ItemMatch

	// cursor is the selected row.
	cursor int

	// searchInput is the keyword input shown in search mode.
	searchInput textinput.Model

	// searching reports whether the input has focus.
	searching bool

	// err holds the last query error.
	err error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new catalog browser.
func NewApp(hierarchy driving.HierarchyService) (*App, error) {
	if hierarchy == nil {
		return nil, ErrMissingHierarchyService
	}

	input := textinput.New()
	input.Placeholder = "search food items..."
	input.CharLimit = 64

	return &App{
		hierarchy:   hierarchy,
		ctx:         context.Background(),
		styles:      DefaultStyles(),
		level:       levelCategories,
		searchInput: input,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("foodatlas - Food Catalog"),
		a.loadCategories(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.searching {
			return a.updateSearchInput(msg)
		}
		return a.updateList(msg)

	case listLoaded:
		a.level = msg.level
		a.entries = msg.entries
		a.cursor = 0
		a.err = nil
		return a, nil

	case searchCompleted:
		a.level = levelSearch
		a.matches = msg.matches
		a.cursor = 0
		a.err = nil
		return a, nil

	case loadFailed:
		a.err = msg.err
		return a, nil
	}

	return a, nil
}

// updateSearchInput handles keys while the search input has focus.
func (a *App) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.searching = false
		a.searchInput.Blur()
		return a, nil

	case tea.KeyEnter:
		a.searching = false
		a.searchInput.Blur()
		return a, a.search(a.searchInput.Value())
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

// updateList handles keys in list navigation mode.
func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "/":
		a.searching = true
		a.searchInput.SetValue("")
		return a, a.searchInput.Focus()

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "down", "j":
		if a.cursor < a.listLen()-1 {
			a.cursor++
		}
		return a, nil

	case "enter":
		return a, a.drillIn()

	case "esc":
		return a, a.drillOut()
	}

	return a, nil
}

// listLen is the row count of the active list.
func (a *App) listLen() int {
	if a.level == levelSearch {
		return len(a.matches)
	}
	return len(a.entries)
}

// drillIn descends one hierarchy level from the selected row.
func (a *App) drillIn() tea.Cmd {
	if a.listLen() == 0 {
		return nil
	}

	switch a.level {
	case levelCategories:
		a.category = a.entries[a.cursor]
		return a.loadSubcategories(a.category)

	case levelSubcategories:
		a.subcategory = a.entries[a.cursor]
		return a.loadItems(a.category, a.subcategory)

	case levelItems, levelSearch:
		// Leaf level, nothing to drill into
	}
	return nil
}

// drillOut ascends one hierarchy level.
func (a *App) drillOut() tea.Cmd {
	switch a.level {
	case levelSubcategories, levelSearch:
		return a.loadCategories()

	case levelItems:
		return a.loadSubcategories(a.category)

	case levelCategories:
		// Already at the top
	}
	return nil
}

func (a *App) loadCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := a.hierarchy.Categories(a.ctx)
		if err != nil {
			return loadFailed{err: err}
		}
		return listLoaded{level: levelCategories, entries: categories}
	}
}

func (a *App) loadSubcategories(category string) tea.Cmd {
	return func() tea.Msg {
		subcategories, err := a.hierarchy.Subcategories(a.ctx, category)
		if err != nil {
			return loadFailed{err: err}
		}
		return listLoaded{level: levelSubcategories, entries: subcategories}
	}
}

func (a *App) loadItems(category, subcategory string) tea.Cmd {
	return func() tea.Msg {
		items, err := a.hierarchy.FoodItems(a.ctx, category, subcategory)
		if err != nil {
			return loadFailed{err: err}
		}
		return listLoaded{level: levelItems, entries: items}
	}
}

func (a *App) search(keyword string) tea.Cmd {
	return func() tea.Msg {
		matches, err := a.hierarchy.SearchItems(a.ctx, keyword)
		if err != nil {
			return loadFailed{err: err}
		}
		return searchCompleted{keyword: keyword, matches: matches}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(a.title()))
	b.WriteString("\n\n")

	if a.searching {
		b.WriteString(a.styles.InputField.Render(a.searchInput.View()))
		b.WriteString("\n\n")
	}

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err)))
		b.WriteString("\n")
	}

	if a.level == levelSearch {
		a.renderMatches(&b)
	} else {
		a.renderEntries(&b)
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("↑/k ↓/j navigate · enter select · esc back · / search · q quit"))

	return b.String()
}

// title describes the current position in the hierarchy.
func (a *App) title() string {
	switch a.level {
	case levelSubcategories:
		return a.category
	case levelItems:
		return fmt.Sprintf("%s > %s", a.category, a.subcategory)
	case levelSearch:
		return fmt.Sprintf("Search: %d match(es)", len(a.matches))
	case levelCategories:
	}
	return "Food Categories"
}

func (a *App) renderEntries(b *strings.Builder) {
	if len(a.entries) == 0 {
		b.WriteString(a.styles.Muted.Render("No entries."))
		b.WriteString("\n")
		return
	}

	for i, entry := range a.entries {
		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render("> " + entry))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + entry))
		}
		b.WriteString("\n")
	}
}

func (a *App) renderMatches(b *strings.Builder) {
	if len(a.matches) == 0 {
		b.WriteString(a.styles.Muted.Render("No matches."))
		b.WriteString("\n")
		return
	}

	for i, m := range a.matches {
		line := fmt.Sprintf("%s  (%s > %s)", m.Item, m.Category, m.Subcategory)
		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
}
