package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/foodatlas/foodatlas-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/foodatlas/foodatlas-cli/internal/core/domain"
	"github.com/foodatlas/foodatlas-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based catalog store that provides access to
// both collection interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.foodatlas/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".foodatlas", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// HierarchyStore returns a HierarchyStore interface backed by this store.
func (s *Store) HierarchyStore() driven.HierarchyStore {
	return &hierarchyStore{store: s}
}

// NutritionStore returns a NutritionStore interface backed by this store.
func (s *Store) NutritionStore() driven.NutritionStore {
	return &nutritionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_catalog.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// storeErr tags a backend failure so callers can detect it with errors.Is
// against domain.ErrStoreUnavailable.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// ==================== Hierarchy Store ====================

// hierarchyStore implements driven.HierarchyStore.
type hierarchyStore struct {
	store *Store
}

var _ driven.HierarchyStore = (*hierarchyStore)(nil)

// List returns every hierarchy entry in rowid order.
func (s *hierarchyStore) List(ctx context.Context) ([]domain.HierarchyEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT category, subcategory, food_items
		FROM hierarchy_entries ORDER BY rowid
	`)
	if err != nil {
		return nil, storeErr("querying hierarchy", err)
	}
	defer rows.Close()

	return scanHierarchyEntries(rows)
}

// Find returns the entries satisfying the filter, in rowid order.
func (s *hierarchyStore) Find(ctx context.Context, filter driven.HierarchyFilter) ([]domain.HierarchyEntry, error) {
	query := "SELECT category, subcategory, food_items FROM hierarchy_entries"

	var conds []string
	var args []any
	if filter.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Subcategory != nil {
		conds = append(conds, "subcategory = ?")
		args = append(args, *filter.Subcategory)
	}
	if filter.Item != nil {
		if cond, ok := itemCondition(*filter.Item); ok {
			conds = append(conds, cond)
			args = append(args, filter.Item.Value)
		}
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rowid"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("querying hierarchy", err)
	}
	defer rows.Close()

	return scanHierarchyEntries(rows)
}

// itemCondition translates an item predicate into SQL over the unwound
// food_items JSON array. Returns ok=false when the predicate matches
// everything and no condition is needed.
func itemCondition(match driven.StringMatch) (string, bool) {
	const unwind = "EXISTS (SELECT 1 FROM json_each(hierarchy_entries.food_items) WHERE %s)"

	switch match.Kind {
	case driven.MatchExactFold:
		return fmt.Sprintf(unwind, "lower(json_each.value) = lower(?)"), true
	case driven.MatchContainsFold:
		if match.Value == "" {
			return "", false
		}
		return fmt.Sprintf(unwind, "instr(lower(json_each.value), lower(?)) > 0"), true
	default:
		return fmt.Sprintf(unwind, "json_each.value = ?"), true
	}
}

// DistinctCategories returns the distinct category values, sorted.
func (s *hierarchyStore) DistinctCategories(ctx context.Context) ([]string, error) {
	return s.store.distinctColumn(ctx, `
		SELECT DISTINCT category FROM hierarchy_entries ORDER BY category
	`)
}

// DistinctSubcategories returns the distinct subcategory values of entries
// whose category matches exactly, sorted.
func (s *hierarchyStore) DistinctSubcategories(ctx context.Context, category string) ([]string, error) {
	return s.store.distinctColumn(ctx, `
		SELECT DISTINCT subcategory FROM hierarchy_entries
		WHERE category = ? ORDER BY subcategory
	`, category)
}

// ==================== Nutrition Store ====================

// nutritionStore implements driven.NutritionStore.
type nutritionStore struct {
	store *Store
}

var _ driven.NutritionStore = (*nutritionStore)(nil)

// List returns every nutrition record in rowid order.
func (s *nutritionStore) List(ctx context.Context) ([]domain.NutritionRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, calories_per_100, calories_unit, servings, display_serving, display_qualifier
		FROM nutrition_records ORDER BY rowid
	`)
	if err != nil {
		return nil, storeErr("querying nutrition", err)
	}
	defer rows.Close()

	return scanNutritionRecords(rows)
}

// FindByName returns the records whose name satisfies the predicate, in
// rowid order.
func (s *nutritionStore) FindByName(ctx context.Context, match driven.StringMatch) ([]domain.NutritionRecord, error) {
	query := `
		SELECT name, calories_per_100, calories_unit, servings, display_serving, display_qualifier
		FROM nutrition_records
	`

	var args []any
	switch match.Kind {
	case driven.MatchExactFold:
		query += " WHERE lower(name) = lower(?)"
		args = append(args, match.Value)
	case driven.MatchContainsFold:
		// An empty substring matches every record.
		if match.Value != "" {
			query += " WHERE instr(lower(name), lower(?)) > 0"
			args = append(args, match.Value)
		}
	default:
		query += " WHERE name = ?"
		args = append(args, match.Value)
	}
	query += " ORDER BY rowid"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("querying nutrition", err)
	}
	defer rows.Close()

	return scanNutritionRecords(rows)
}

// DistinctNames returns the distinct record names, sorted.
func (s *nutritionStore) DistinctNames(ctx context.Context) ([]string, error) {
	return s.store.distinctColumn(ctx, `
		SELECT DISTINCT name FROM nutrition_records ORDER BY name
	`)
}

// distinctColumn runs a single-column query and collects the values.
func (s *Store) distinctColumn(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("querying distinct values", err)
	}
	defer rows.Close()

	var values []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, storeErr("scanning distinct value", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating distinct values", err)
	}
	return values, nil
}

// ==================== Import ====================

// ImportHierarchy replaces the hierarchy collection with the given entries.
// Import is not part of the driven port: the query engine is read-only and
// datasets are loaded explicitly via the CLI.
func (s *Store) ImportHierarchy(ctx context.Context, entries []domain.HierarchyEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM hierarchy_entries"); err != nil {
		return fmt.Errorf("clearing hierarchy: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO hierarchy_entries (id, category, subcategory, food_items)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		items := e.FoodItems
		if items == nil {
			items = []string{}
		}
		itemsJSON, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshalling food items: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, uuid.NewString(), e.Category, e.Subcategory, string(itemsJSON)); err != nil {
			return fmt.Errorf("inserting hierarchy entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ImportNutrition replaces the nutrition collection with the given records.
func (s *Store) ImportNutrition(ctx context.Context, records []domain.NutritionRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM nutrition_records"); err != nil {
		return fmt.Errorf("clearing nutrition: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nutrition_records
			(id, name, calories_per_100, calories_unit, servings, display_serving, display_qualifier)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		servingsJSON, err := json.Marshal(toDBServings(r.Servings))
		if err != nil {
			return fmt.Errorf("marshalling servings: %w", err)
		}
		displayJSON, err := json.Marshal(toDBServing(r.DisplayServing))
		if err != nil {
			return fmt.Errorf("marshalling display serving: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, uuid.NewString(), r.Name, r.CaloriesPer100Unit,
			r.CaloriesUnitLabel, string(servingsJSON), string(displayJSON), r.DisplayServingQualifier); err != nil {
			return fmt.Errorf("inserting nutrition record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ==================== Row mapping ====================

// dbServing is the JSON column shape of one serving slot.
type dbServing struct {
	MeasurementUnit string `json:"measurement_unit"`
	Size            string `json:"size"`
	UnitLabel       string `json:"unit_label"`
	UnitCount       string `json:"unit_count"`
}

func toDBServing(s domain.ServingOption) dbServing {
	return dbServing{
		MeasurementUnit: s.MeasurementUnit,
		Size:            s.Size,
		UnitLabel:       s.UnitLabel,
		UnitCount:       s.UnitCount,
	}
}

func toDBServings(servings []domain.ServingOption) []dbServing {
	out := make([]dbServing, len(servings))
	for i, s := range servings {
		out[i] = toDBServing(s)
	}
	return out
}

func fromDBServing(s dbServing) domain.ServingOption {
	return domain.ServingOption{
		MeasurementUnit: s.MeasurementUnit,
		Size:            s.Size,
		UnitLabel:       s.UnitLabel,
		UnitCount:       s.UnitCount,
	}
}

func scanHierarchyEntries(rows *sql.Rows) ([]domain.HierarchyEntry, error) {
	var entries []domain.HierarchyEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry domain.HierarchyEntry
		var itemsJSON string
		if err := rows.Scan(&entry.Category, &entry.Subcategory, &itemsJSON); err != nil {
			return nil, storeErr("scanning hierarchy entry", err)
		}
		if err := json.Unmarshal([]byte(itemsJSON), &entry.FoodItems); err != nil {
			return nil, storeErr("decoding food items", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating hierarchy entries", err)
	}
	return entries, nil
}

func scanNutritionRecords(rows *sql.Rows) ([]domain.NutritionRecord, error) {
	var records []domain.NutritionRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var record domain.NutritionRecord
		var servingsJSON, displayJSON string
		if err := rows.Scan(&record.Name, &record.CaloriesPer100Unit, &record.CaloriesUnitLabel,
			&servingsJSON, &displayJSON, &record.DisplayServingQualifier); err != nil {
			return nil, storeErr("scanning nutrition record", err)
		}

		var servings []dbServing
		if err := json.Unmarshal([]byte(servingsJSON), &servings); err != nil {
			return nil, storeErr("decoding servings", err)
		}
		record.Servings = make([]domain.ServingOption, len(servings))
		for i, s := range servings {
			record.Servings[i] = fromDBServing(s)
		}

		var display dbServing
		if err := json.Unmarshal([]byte(displayJSON), &display); err != nil {
			return nil, storeErr("decoding display serving", err)
		}
		record.DisplayServing = fromDBServing(display)

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating nutrition records", err)
	}
	return records, nil
}
