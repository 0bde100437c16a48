package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) SetDatasetPath(path, sheet string) error {
	args := m.Called(path, sheet)
	return args.Error(0)
}

func (m *MockSettingsService) SetSampleRows(n int) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockSettingsService) SetHistogramBins(n int) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockSettingsService) Validate() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	args := m.Called()
	return args.Get(0).(domain.AppSettings)
}

func testSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	s.Display.HistogramBins = 12
	return &s
}

// loadedView returns a view with settings already delivered.
func loadedView(svc *MockSettingsService) *View {
	v := NewView(styles.DefaultStyles(), svc)
	v.SetDimensions(100, 40)
	v.Update(messages.SettingsLoaded{Settings: testSettings()})
	return v
}

func typeText(v *View, text string) {
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func clearField(v *View) {
	v.fields[v.focused].Reset()
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Len(t, v.fields, fieldCount)
	assert.Equal(t, FieldDatasetPath, v.Focused())
}

func TestView_Init_LoadsSettings(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(testSettings(), nil)
	v := NewView(nil, svc)

	msg := v.loadSettings()()

	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Equal(t, 12, loaded.Settings.Display.HistogramBins)
	assert.NotNil(t, v.Init())
	svc.AssertExpectations(t)
}

func TestView_LoadSettings_NoService(t *testing.T) {
	v := NewView(nil, nil)

	msg := v.loadSettings()().(messages.SettingsLoaded)

	assert.Error(t, msg.Err)
}

func TestView_SettingsLoaded_FillsForm(t *testing.T) {
	v := loadedView(new(MockSettingsService))

	assert.Equal(t, "titanic.csv", v.fields[FieldDatasetPath].Value())
	assert.Equal(t, "", v.fields[FieldSheet].Value())
	assert.Equal(t, "5", v.fields[FieldSampleRows].Value())
	assert.Equal(t, "12", v.fields[FieldHistogramBins].Value())

	view := v.View()
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "Dataset path:")
	assert.Contains(t, view, "Histogram bins:")
}

func TestView_SettingsLoaded_Error(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(messages.SettingsLoaded{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.View(), "Error: boom")
}

func TestView_View_Loading(t *testing.T) {
	assert.Contains(t, NewView(nil, nil).View(), "Loading settings...")
}

func TestView_FocusNavigation(t *testing.T) {
	v := loadedView(new(MockSettingsService))

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, FieldSheet, v.Focused())

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldSampleRows, v.Focused())

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldDatasetPath, v.Focused())

	// Wraps to the last field
	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, FieldHistogramBins, v.Focused())
}

func TestView_Enter_SavesEditedSettings(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Save", mock.MatchedBy(func(s *domain.AppSettings) bool {
		return s.Display.SampleRows == 20 && s.Display.HistogramBins == 12 &&
			s.Dataset.Path == "titanic.csv"
	})).Return(nil)
	v := loadedView(svc)
	v.focus(FieldSampleRows)
	clearField(v)
	typeText(v, "20")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	svc.AssertExpectations(t)
}

func TestView_Enter_RejectsNonNumeric(t *testing.T) {
	v := loadedView(new(MockSettingsService))
	v.focus(FieldHistogramBins)
	clearField(v)
	typeText(v, "many")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), domain.ErrInvalidInput)
	assert.Contains(t, v.Err().Error(), "histogram bins must be a whole number")
}

func TestView_Enter_RejectsOutOfRange(t *testing.T) {
	v := loadedView(new(MockSettingsService))
	v.focus(FieldSampleRows)
	clearField(v)
	typeText(v, "0")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), domain.ErrInvalidInput)
}

func TestView_SettingsSaved(t *testing.T) {
	svc := new(MockSettingsService)
	v := loadedView(svc)

	_, cmd := v.Update(messages.SettingsSaved{})

	assert.True(t, v.Saved())
	assert.NotNil(t, cmd)
	assert.Contains(t, v.View(), "Settings saved")

	v.Update(messages.SettingsSaved{Err: errors.New("disk full")})

	assert.False(t, v.Saved())
	assert.EqualError(t, v.Err(), "disk full")
}

func TestView_Esc_ReturnsToMenu(t *testing.T) {
	v := loadedView(new(MockSettingsService))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Reset(t *testing.T) {
	v := loadedView(new(MockSettingsService))
	v.focus(FieldSampleRows)

	v.Reset()

	assert.Equal(t, FieldDatasetPath, v.Focused())
	assert.Nil(t, v.settings)
	assert.Equal(t, "", v.fields[FieldSampleRows].Value())
}
