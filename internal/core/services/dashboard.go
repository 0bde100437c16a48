package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driven"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
	"github.com/custodia-labs/titanic-cli/internal/logger"
)

// Ensure DashboardService implements the interface.
var _ driving.DashboardService = (*DashboardService)(nil)

// DashboardService is the dataset transform pipeline. It owns the record
// table, loaded once and never modified, and derives a fresh view from it
// on every Render call. Safe for concurrent use.
type DashboardService struct {
	frame    dataframe.DataFrame
	info     driving.DatasetInfo
	settings driving.SettingsService
	now      func() time.Time
}

// LoadDashboard reads the dataset from source and builds the record table.
// A missing file or a dataset lacking domain.RequiredColumns is an error.
// The settings service is optional; without it defaults apply.
func LoadDashboard(
	ctx context.Context, source driven.DatasetSource, settings driving.SettingsService,
) (*DashboardService, error) {
	if source == nil {
		return nil, errors.New("dataset source is required")
	}

	logger.Section("Dataset Load")
	logger.Debug("Source: %s (%s)", source.Location(), source.Format())
	start := time.Now()

	tbl, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	svc, err := NewDashboardService(tbl, settings)
	if err != nil {
		return nil, err
	}
	svc.info.Location = source.Location()
	svc.info.Format = source.Format()

	logger.Info("Loaded %d rows x %d columns in %s", svc.info.Rows, svc.info.Columns, time.Since(start))
	return svc, nil
}

// NewDashboardService builds the pipeline over an already loaded table.
func NewDashboardService(tbl *domain.RawTable, settings driving.SettingsService) (*DashboardService, error) {
	if tbl == nil {
		return nil, domain.ErrEmptyDataset
	}
	if err := tbl.RequireColumns(domain.RequiredColumns...); err != nil {
		return nil, err
	}

	frame, err := newFrame(tbl)
	if err != nil {
		return nil, err
	}

	return &DashboardService{
		frame:    frame,
		settings: settings,
		now:      time.Now,
		info: driving.DatasetInfo{
			Rows:    frame.Nrow(),
			Columns: frame.Ncol(),
		},
	}, nil
}

// Sections returns the navigable sections in menu order.
func (s *DashboardService) Sections() []domain.Section {
	return domain.Sections()
}

// Dataset describes the loaded dataset.
func (s *DashboardService) Dataset() driving.DatasetInfo {
	return s.info
}

// Render runs exactly one section's transform over the record table.
func (s *DashboardService) Render(ctx context.Context, section domain.Section) (*domain.SectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !section.IsValid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownSection, int(section))
	}

	display := s.display()
	result := &domain.SectionResult{
		PassID:     uuid.NewString(),
		Section:    section,
		RenderedAt: s.now(),
	}

	logger.Section("Render " + section.String())
	logger.Debug("Pass %s, sample rows %d, histogram bins %d",
		result.PassID, display.SampleRows, display.HistogramBins)

	var err error
	switch section {
	case domain.SectionOverview:
		result.Overview = overview(s.frame, display.SampleRows)
	case domain.SectionCleaning:
		result.Cleaning, err = cleaning(s.frame, display.SampleRows)
	case domain.SectionSurvival:
		result.Survival, err = survivalByGender(s.frame)
	case domain.SectionCorrelation:
		result.Correlation, err = correlation(s.frame)
	case domain.SectionAdditional:
		result.Additional, err = additional(s.frame, display.HistogramBins)
	}
	result.Duration = s.now().Sub(result.RenderedAt)

	if err != nil {
		logger.Warn("Pass %s failed after %s: %v", result.PassID, result.Duration, err)
		return nil, fmt.Errorf("%s: %w", section, err)
	}

	logger.Info("Pass %s rendered %q in %s", result.PassID, section, result.Duration)
	return result, nil
}

// display returns the display settings, falling back to defaults when no
// settings service is configured or it fails.
func (s *DashboardService) display() domain.DisplaySettings {
	if s.settings == nil {
		return domain.DefaultAppSettings().Display
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("Reading settings failed, using defaults: %v", err)
		return domain.DefaultAppSettings().Display
	}
	return settings.Display
}
