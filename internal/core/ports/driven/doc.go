// Package driven defines the outbound ports of the query engine: the
// catalog store capability the services read from, and the config store.
// Adapters under internal/adapters/driven implement these interfaces.
package driven
