// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Bindery. It enables AI assistants like Claude to export books
// through the engine's single call surface.
package mcp

import "errors"

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("mcp: export service is required")
