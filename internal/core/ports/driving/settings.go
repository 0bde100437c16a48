package driving

import "github.com/custodia-labs/titanic-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDatasetPath updates the dataset location and worksheet.
	SetDatasetPath(path, sheet string) error

	// SetSampleRows updates the number of sample rows shown.
	SetSampleRows(n int) error

	// SetHistogramBins updates the age histogram bin count (0 = automatic).
	SetHistogramBins(n int) error

	// Validate checks the current settings are within range.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
