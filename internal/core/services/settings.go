package services

import (
	"fmt"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driven"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDatasetPath   = "dataset.path"
	KeyDatasetSheet  = "dataset.sheet"
	KeySampleRows    = "display.sample_rows"
	KeyHistogramBins = "display.histogram_bins"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings. Absent or out-of-range
// values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dataset: domain.DatasetSettings{
			Path:  s.getString(KeyDatasetPath, defaults.Dataset.Path),
			Sheet: s.configStore.GetString(KeyDatasetSheet),
		},
		Display: domain.DisplaySettings{
			SampleRows:    s.getIntInRange(KeySampleRows, defaults.Display.SampleRows, 1, domain.MaxSampleRows),
			HistogramBins: s.getIntInRange(KeyHistogramBins, defaults.Display.HistogramBins, 0, domain.MaxHistogramBins),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(KeyDatasetPath, settings.Dataset.Path); err != nil {
		return fmt.Errorf("save dataset path: %w", err)
	}
	if err := s.configStore.Set(KeyDatasetSheet, settings.Dataset.Sheet); err != nil {
		return fmt.Errorf("save dataset sheet: %w", err)
	}
	if err := s.configStore.Set(KeySampleRows, settings.Display.SampleRows); err != nil {
		return fmt.Errorf("save sample rows: %w", err)
	}
	if err := s.configStore.Set(KeyHistogramBins, settings.Display.HistogramBins); err != nil {
		return fmt.Errorf("save histogram bins: %w", err)
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// SetDatasetPath updates the dataset location and worksheet.
func (s *SettingsService) SetDatasetPath(path, sheet string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Dataset.Path = path
	settings.Dataset.Sheet = sheet

	return s.Save(settings)
}

// SetSampleRows updates the number of sample rows shown.
func (s *SettingsService) SetSampleRows(n int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Display.SampleRows = n

	return s.Save(settings)
}

// SetHistogramBins updates the age histogram bin count.
func (s *SettingsService) SetHistogramBins(n int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Display.HistogramBins = n

	return s.Save(settings)
}

// Validate checks the stored values are within range. Unlike Get, it
// reports out-of-range values instead of replacing them.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if _, ok := s.configStore.Get(KeySampleRows); ok {
		settings.Display.SampleRows = s.configStore.GetInt(KeySampleRows)
	}
	if _, ok := s.configStore.Get(KeyHistogramBins); ok {
		settings.Display.HistogramBins = s.configStore.GetInt(KeyHistogramBins)
	}

	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getIntInRange(key string, defaultVal, lo, hi int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < lo || val > hi {
		return defaultVal
	}
	return val
}
