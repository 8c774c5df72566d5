// Package driving defines the inbound ports of the query engine: the
// interfaces the MCP server, CLI, and TUI adapters call into.
package driving
