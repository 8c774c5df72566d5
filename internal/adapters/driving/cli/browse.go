package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/foodatlas/foodatlas-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the food hierarchy interactively",
	Long: `Launch the interactive terminal browser for the food catalog.

Drill from categories into subcategories and food items, or press /
to search item names across the whole hierarchy.

Controls:
  ↑/k, ↓/j - Navigate
  Enter     - Drill in / Select
  Esc       - Back / Cancel search
  /         - Search food items
  q         - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps the stack trace readable once the alt screen closes
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if hierarchyService == nil {
		return errors.New("hierarchy service not configured")
	}

	app, err := tui.NewApp(hierarchyService)
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}

	return nil
}
