// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// dashboard. It lets AI assistants list and render dashboard sections.
package mcp

import "errors"

// ErrMissingDashboardService is returned when the dashboard service is not provided.
var ErrMissingDashboardService = errors.New("mcp: dashboard service is required")
