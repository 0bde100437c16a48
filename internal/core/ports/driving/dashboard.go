package driving

import (
	"context"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// DashboardService renders dashboard sections to external actors.
type DashboardService interface {
	// Sections returns the navigable sections in menu order.
	Sections() []domain.Section

	// Render runs the transform for exactly one section over the loaded
	// dataset. A column the section needs but the dataset lacks yields
	// domain.ErrMissingColumn for this pass only.
	Render(ctx context.Context, section domain.Section) (*domain.SectionResult, error)

	// Dataset describes the loaded dataset: its location and shape.
	Dataset() DatasetInfo
}

// DatasetInfo summarises the loaded dataset.
type DatasetInfo struct {
	Location string `json:"location"`
	Format   string `json:"format"`
	Rows     int    `json:"rows"`
	Columns  int    `json:"columns"`
}
