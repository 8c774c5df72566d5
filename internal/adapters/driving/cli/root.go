// Package cli provides the cobra command tree for the foodatlas binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodatlas/foodatlas-cli/internal/adapters/driven/config/file"
	"github.com/foodatlas/foodatlas-cli/internal/adapters/driven/storage/sqlite"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driven"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driving"
	"github.com/foodatlas/foodatlas-cli/internal/core/services"
	"github.com/foodatlas/foodatlas-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose bool
	dataDir string
)

// Package-level services, wired once per invocation by initServices.
// Tests swap these for mocks.
var (
	hierarchyService driving.HierarchyService
	nutritionService driving.NutritionService
	catalogStore     *sqlite.Store
	configStore      driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "foodatlas",
	Short: "Query the food hierarchy and nutrition catalog",
	Long: `foodatlas is a read-only query engine over a food catalog.

It answers hierarchy questions (categories, subcategories, food items),
keyword searches, reverse lookups and dataset statistics, and serves
per-food nutrition records. The same catalog is exposed to AI assistants
through an MCP server (see "foodatlas mcp serve").`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the catalog database (default ~/.foodatlas/data)")
}

// initServices wires the sqlite store and the query services. It is a
// no-op when the services are already set, which lets tests inject mocks.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if hierarchyService != nil && nutritionService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	dir := dataDir
	if dir == "" {
		dir = cfg.GetString("storage.data_dir")
	}

	store, err := sqlite.NewStore(dir)
	if err != nil {
		return fmt.Errorf("opening catalog store: %w", err)
	}
	catalogStore = store

	hierarchyService = services.NewHierarchyService(store.HierarchyStore())
	nutritionService = services.NewNutritionService(store.NutritionStore())

	logger.Debug("services initialised (data dir: %s)", store.Path())
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if catalogStore != nil {
			catalogStore.Close() //nolint:errcheck
		}
	}()
	return rootCmd.Execute()
}
