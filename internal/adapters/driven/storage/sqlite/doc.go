// Package sqlite provides a SQLite-backed implementation of the catalog
// store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. A single database
// connection backs both collections:
//
//   - HierarchyStore: the food hierarchy collection
//   - NutritionStore: the nutrition collection
//
// Food item lists and serving slots are stored as JSON columns; item-level
// predicates run store-side through json_each.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.foodatlas/data/catalog.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
