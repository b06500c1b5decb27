package mcp

import (
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Export renders books into target formats.
	Export driving.ExportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
