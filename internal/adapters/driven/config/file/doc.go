// Package file provides a TOML file-backed config store. Keys use dot
// notation for nested tables (e.g. "mcp.port").
package file
