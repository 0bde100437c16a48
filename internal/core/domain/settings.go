package domain

import "fmt"

// Setting limits.
const (
	DefaultDatasetPath   = "titanic.csv"
	DefaultSampleRows    = 5
	MaxSampleRows        = 100
	DefaultHistogramBins = 0
	MaxHistogramBins     = 200
)

// DatasetSettings locates the passenger dataset.
type DatasetSettings struct {
	// Path is the dataset file. Relative paths resolve against the
	// working directory.
	Path string

	// Sheet selects the worksheet of an XLSX dataset. Empty means the
	// first sheet.
	Sheet string
}

// DisplaySettings controls how sections are presented.
type DisplaySettings struct {
	// SampleRows is the number of leading rows shown by the overview
	// and cleaning sections.
	SampleRows int

	// HistogramBins is the age histogram bin count. Zero selects
	// Sturges' rule.
	HistogramBins int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Dataset DatasetSettings
	Display DisplaySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dataset: DatasetSettings{
			Path: DefaultDatasetPath,
		},
		Display: DisplaySettings{
			SampleRows:    DefaultSampleRows,
			HistogramBins: DefaultHistogramBins,
		},
	}
}

// Validate checks every setting is within range.
func (s AppSettings) Validate() error {
	if s.Dataset.Path == "" {
		return fmt.Errorf("%w: dataset path is empty", ErrInvalidInput)
	}
	if s.Display.SampleRows < 1 || s.Display.SampleRows > MaxSampleRows {
		return fmt.Errorf("%w: sample rows must be between 1 and %d, got %d",
			ErrInvalidInput, MaxSampleRows, s.Display.SampleRows)
	}
	if s.Display.HistogramBins < 0 || s.Display.HistogramBins > MaxHistogramBins {
		return fmt.Errorf("%w: histogram bins must be between 0 and %d, got %d",
			ErrInvalidInput, MaxHistogramBins, s.Display.HistogramBins)
	}
	return nil
}
