// Package tui provides an interactive terminal dashboard over the passenger
// dataset. It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dashboard renders dashboard sections.
	Dashboard driving.DashboardService

	// Settings manages application settings. Optional: without it the
	// settings view reports that settings are unavailable.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(dashboard driving.DashboardService, settings driving.SettingsService) *Ports {
	return &Ports{
		Dashboard: dashboard,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Dashboard == nil {
		return ErrMissingDashboardService
	}
	return nil
}
