package mcp

import (
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dashboard renders dashboard sections.
	Dashboard driving.DashboardService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Dashboard == nil {
		return ErrMissingDashboardService
	}
	return nil
}
