package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingDashboardService(t *testing.T) {
	assert.EqualError(t, ErrMissingDashboardService, "tui: dashboard service is required")
}
