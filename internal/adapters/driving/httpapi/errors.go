// Package httpapi serves dashboard sections over HTTP as JSON or plain
// text. It is a driving adapter alongside the CLI, TUI and MCP server.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// ErrMissingDashboardService is returned when the dashboard service is not provided.
var ErrMissingDashboardService = errors.New("httpapi: dashboard service is required")

// APIError is the JSON body of every failed request.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer.
func (e *APIError) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// newAPIError maps a service error to its HTTP status.
func newAPIError(err error) *APIError {
	switch {
	case errors.Is(err, domain.ErrUnknownSection):
		return &APIError{StatusCode: http.StatusNotFound, ErrorCode: "UNKNOWN_SECTION", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return &APIError{StatusCode: http.StatusBadRequest, ErrorCode: "INVALID_PARAMETER", Message: err.Error()}
	case errors.Is(err, domain.ErrMissingColumn), errors.Is(err, domain.ErrInvalidColumn):
		return &APIError{StatusCode: http.StatusUnprocessableEntity, ErrorCode: "DATASET_INCOMPATIBLE", Message: err.Error()}
	default:
		return &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "INTERNAL", Message: err.Error()}
	}
}
