package driven

import (
	"context"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// DatasetSource reads the passenger dataset.
// Each file format (CSV, TSV, XLSX) implements this interface.
type DatasetSource interface {
	// Format returns the source format identifier (e.g. "csv").
	Format() string

	// Location returns the path the source reads from.
	Location() string

	// Load reads the whole dataset. A missing file yields
	// domain.ErrDatasetNotFound. The returned table is normalised.
	Load(ctx context.Context) (*domain.RawTable, error)
}

// DatasetSourceFactory creates a source for the configured dataset.
type DatasetSourceFactory interface {
	// Create returns a source for settings.Path, chosen by extension.
	Create(settings domain.DatasetSettings) (DatasetSource, error)

	// SupportedFormats lists the recognised file extensions.
	SupportedFormats() []string
}
