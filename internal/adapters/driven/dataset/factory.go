package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.DatasetSourceFactory = (*Factory)(nil)

// Factory creates dataset sources by file extension.
type Factory struct{}

// NewFactory creates a source factory.
func NewFactory() *Factory {
	return &Factory{}
}

// SupportedFormats lists the recognised file extensions.
func (f *Factory) SupportedFormats() []string {
	return []string{".csv", ".tsv", ".xlsx"}
}

// Create returns a source for the configured dataset.
func (f *Factory) Create(settings domain.DatasetSettings) (driven.DatasetSource, error) {
	if settings.Path == "" {
		return nil, fmt.Errorf("%w: dataset path is empty", domain.ErrInvalidInput)
	}

	switch ext := strings.ToLower(filepath.Ext(settings.Path)); ext {
	case ".csv":
		return NewCSVSource(settings.Path), nil
	case ".tsv":
		return NewTSVSource(settings.Path), nil
	case ".xlsx":
		return NewXLSXSource(settings.Path, settings.Sheet), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedFormat, ext, strings.Join(f.SupportedFormats(), ", "))
	}
}
