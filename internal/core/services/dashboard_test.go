package services

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/logger"
)

func TestLoadDashboard(t *testing.T) {
	source := &mockDatasetSource{}

	svc, err := LoadDashboard(context.Background(), source, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, source.loads)
	info := svc.Dataset()
	assert.Equal(t, "testdata/titanic.csv", info.Location)
	assert.Equal(t, "csv", info.Format)
	assert.Equal(t, 8, info.Rows)
	assert.Equal(t, 12, info.Columns)
	assert.Equal(t, domain.Sections(), svc.Sections())
}

func TestLoadDashboard_SourceErrors(t *testing.T) {
	_, err := LoadDashboard(context.Background(), nil, nil)
	assert.Error(t, err)

	source := &mockDatasetSource{
		LoadFunc: func(context.Context) (*domain.RawTable, error) {
			return nil, domain.ErrDatasetNotFound
		},
	}
	_, err = LoadDashboard(context.Background(), source, nil)
	assert.True(t, errors.Is(err, domain.ErrDatasetNotFound))
}

func TestNewDashboardService_RejectsMissingColumns(t *testing.T) {
	tbl := &domain.RawTable{
		Header:  []string{"Survived", "Sex"},
		Records: [][]string{{"1", "female"}},
	}

	_, err := NewDashboardService(tbl, nil)

	assert.True(t, errors.Is(err, domain.ErrMissingColumn))
	assert.Contains(t, err.Error(), "Pclass, Age, Fare")
}

func TestDashboardService_RenderEverySection(t *testing.T) {
	svc, err := NewDashboardService(manifest(), nil)
	require.NoError(t, err)

	for _, section := range domain.Sections() {
		t.Run(section.Slug(), func(t *testing.T) {
			result, err := svc.Render(context.Background(), section)
			require.NoError(t, err)

			assert.Equal(t, section, result.Section)
			_, err = uuid.Parse(result.PassID)
			assert.NoError(t, err)

			set := 0
			for _, present := range []bool{
				result.Overview != nil,
				result.Cleaning != nil,
				result.Survival != nil,
				result.Correlation != nil,
				result.Additional != nil,
			} {
				if present {
					set++
				}
			}
			assert.Equal(t, 1, set, "exactly one payload per pass")
		})
	}
}

func TestDashboardService_Render_InfiniteValuesAreMissing(t *testing.T) {
	tbl := twoPassengers()
	tbl.Records = append(tbl.Records, []string{"1", "2", "female", "inf", "Inf"})
	svc, err := NewDashboardService(tbl, nil)
	require.NoError(t, err)

	var result *domain.SectionResult
	require.NotPanics(t, func() {
		result, err = svc.Render(context.Background(), domain.SectionAdditional)
	})
	require.NoError(t, err)
	require.NotNil(t, result.Additional)

	hist := result.Additional.AgeDistribution
	assert.Equal(t, 2, hist.Observations)
	assert.Equal(t, 1, hist.Excluded)
	for _, bin := range hist.Bins {
		assert.False(t, math.IsInf(bin.Lower, 0) || math.IsNaN(bin.Lower))
		assert.False(t, math.IsInf(bin.Upper, 0) || math.IsNaN(bin.Upper))
	}

	boxes := result.Additional.FareBySurvival.Boxes
	require.Len(t, boxes, 2)
	assert.Equal(t, 1, boxes[0].Count)
	assert.Equal(t, 1, boxes[1].Count)
	assert.Equal(t, domain.Metric(50), boxes[1].Median)
}

func TestDashboardService_SectionsDoNotShareState(t *testing.T) {
	svc, err := NewDashboardService(manifest(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	before, err := svc.Render(ctx, domain.SectionOverview)
	require.NoError(t, err)

	_, err = svc.Render(ctx, domain.SectionCleaning)
	require.NoError(t, err)

	after, err := svc.Render(ctx, domain.SectionOverview)
	require.NoError(t, err)

	assert.Equal(t, before.Overview, after.Overview)
	assert.NotEqual(t, before.PassID, after.PassID)
	assert.Contains(t, after.Overview.Sample.Columns, "Sex")
	assert.Contains(t, after.Overview.Sample.Columns, "Name")
}

func TestDashboardService_UsesDisplaySettings(t *testing.T) {
	settings := NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.SetSampleRows(2))
	require.NoError(t, settings.SetHistogramBins(3))

	svc, err := NewDashboardService(manifest(), settings)
	require.NoError(t, err)

	ov, err := svc.Render(context.Background(), domain.SectionOverview)
	require.NoError(t, err)
	assert.Len(t, ov.Overview.Sample.Rows, 2)

	add, err := svc.Render(context.Background(), domain.SectionAdditional)
	require.NoError(t, err)
	assert.Len(t, add.Additional.AgeDistribution.Bins, 3)
}

func TestDashboardService_Render_Errors(t *testing.T) {
	svc, err := NewDashboardService(manifest(), nil)
	require.NoError(t, err)

	_, err = svc.Render(context.Background(), domain.Section(99))
	assert.True(t, errors.Is(err, domain.ErrUnknownSection))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Render(ctx, domain.SectionOverview)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDashboardService_Render_ColumnFaultFailsOnlyThatPass(t *testing.T) {
	tbl := manifest()
	// A text Survived column passes the load check but no aggregation can use it.
	for i := range tbl.Records {
		tbl.Records[i][1] = "yes"
	}
	svc, err := NewDashboardService(tbl, nil)
	require.NoError(t, err)

	_, err = svc.Render(context.Background(), domain.SectionSurvival)
	assert.True(t, errors.Is(err, domain.ErrInvalidColumn))
	assert.Contains(t, err.Error(), "Survival Analysis")

	_, err = svc.Render(context.Background(), domain.SectionOverview)
	assert.NoError(t, err)
}

func TestDashboardService_Render_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.ResetOutput()
	})

	svc, err := NewDashboardService(manifest(), nil)
	require.NoError(t, err)

	result, err := svc.Render(context.Background(), domain.SectionCorrelation)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "=== Render Correlation Analysis ===")
	assert.Contains(t, buf.String(), result.PassID)
}
