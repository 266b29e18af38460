// Package driving holds the ports that the CLI, TUI and MCP adapters call
// into. Implementations live in internal/core/services.
package driving
