// Package driving defines the inbound port interfaces: the operations the
// core exposes to external actors (CLI, TUI, MCP).
package driving
