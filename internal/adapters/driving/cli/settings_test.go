package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

func runSettings(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"settings"}, args...))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runSettings(t)

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Contains(t, out, "Path: "+defaults.Dataset.Path)
	assert.Contains(t, out, "Sheet: (first sheet)")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsCmd_SetSampleRows(t *testing.T) {
	cleanup, store := setupTestServicesWith(&mockDashboardService{})
	defer cleanup()

	out, err := runSettings(t, "set", "display.sample_rows", "12")

	require.NoError(t, err)
	assert.Contains(t, out, "Set display.sample_rows to 12")
	assert.Equal(t, 12, store.GetInt("display.sample_rows"))
	assert.Equal(t, 1, store.Saves())

	out, err = runSettings(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample rows: 12")
}

func TestSettingsCmd_SetDatasetKeepsSheet(t *testing.T) {
	cleanup, store := setupTestServicesWith(&mockDashboardService{})
	defer cleanup()

	_, err := runSettings(t, "set", "dataset.sheet", "train")
	require.NoError(t, err)
	_, err = runSettings(t, "set", "dataset.path", "/data/titanic.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "/data/titanic.xlsx", store.GetString("dataset.path"))
	assert.Equal(t, "train", store.GetString("dataset.sheet"))
}

func TestSettingsCmd_SetRejectsBadInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"set", "display.colour", "red"}},
		{"not a number", []string{"set", "display.histogram_bins", "many"}},
		{"out of range", []string{"set", "display.sample_rows", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runSettings(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsCmd_Reset(t *testing.T) {
	cleanup, store := setupTestServicesWith(&mockDashboardService{})
	defer cleanup()

	_, err := runSettings(t, "set", "display.histogram_bins", "30")
	require.NoError(t, err)

	out, err := runSettings(t, "reset")

	require.NoError(t, err)
	assert.Contains(t, out, "Settings restored to defaults.")
	assert.Equal(t, domain.DefaultAppSettings().Display.HistogramBins, store.GetInt("display.histogram_bins"))
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	oldServices := services
	services = nil
	defer func() { services = oldServices }()

	_, err := runSettings(t, "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
