// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// Field indices in form order.
const (
	FieldDatasetPath = iota
	FieldSheet
	FieldSampleRows
	FieldHistogramBins
	fieldCount
)

// View is the settings configuration form.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	fields   []*input.Field
	focused  int
	err      error
	saved    bool

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	fields := make([]*input.Field, fieldCount)
	fields[FieldDatasetPath] = input.NewField(s, "Dataset path", domain.DefaultDatasetPath)
	fields[FieldSheet] = input.NewField(s, "Sheet", "first sheet")
	fields[FieldSampleRows] = input.NewField(s, "Sample rows", strconv.Itoa(domain.DefaultSampleRows))
	fields[FieldHistogramBins] = input.NewField(s, "Histogram bins", "0 = automatic")

	return &View{
		styles:          s,
		settingsService: settingsService,
		fields:          fields,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadSettings(), v.fields[v.focused].Focus())
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// saveSettings returns a command that persists settings.
func (v *View) saveSettings(settings domain.AppSettings) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		return messages.SettingsSaved{Err: v.settingsService.Save(&settings)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
			v.fill()
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.saved = false
			return v, nil
		}
		v.err = nil
		v.saved = true
		// Reload settings after save
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.fields[v.focused], cmd = v.fields[v.focused].Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "shift+tab":
		return v, v.focus(v.focused - 1)
	case "down", "tab":
		return v, v.focus(v.focused + 1)
	case "enter":
		settings, err := v.collect()
		if err != nil {
			v.err = err
			v.saved = false
			return v, nil
		}
		return v, v.saveSettings(settings)
	}

	v.saved = false
	var cmd tea.Cmd
	v.fields[v.focused], cmd = v.fields[v.focused].Update(msg)
	return v, cmd
}

// focus moves focus to field i, wrapping around.
func (v *View) focus(i int) tea.Cmd {
	v.fields[v.focused].Blur()
	v.focused = (i + fieldCount) % fieldCount
	return v.fields[v.focused].Focus()
}

// fill copies the loaded settings into the form.
func (v *View) fill() {
	if v.settings == nil {
		return
	}
	v.fields[FieldDatasetPath].SetValue(v.settings.Dataset.Path)
	v.fields[FieldSheet].SetValue(v.settings.Dataset.Sheet)
	v.fields[FieldSampleRows].SetValue(strconv.Itoa(v.settings.Display.SampleRows))
	v.fields[FieldHistogramBins].SetValue(strconv.Itoa(v.settings.Display.HistogramBins))
}

// collect builds settings from the form and validates them.
func (v *View) collect() (domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if v.settings != nil {
		settings = *v.settings
	}

	settings.Dataset.Path = v.fields[FieldDatasetPath].Value()
	settings.Dataset.Sheet = v.fields[FieldSheet].Value()

	for _, f := range []struct {
		field int
		dst   *int
	}{
		{FieldSampleRows, &settings.Display.SampleRows},
		{FieldHistogramBins, &settings.Display.HistogramBins},
	} {
		n, err := v.fields[f.field].Int()
		if err != nil {
			return settings, fmt.Errorf("%s must be a whole number: %w",
				strings.ToLower(v.fields[f.field].Label()), domain.ErrInvalidInput)
		}
		*f.dst = n
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// View renders the settings form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil && v.err == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render("Dataset"))
	b.WriteString("\n")
	b.WriteString(v.fields[FieldDatasetPath].View())
	b.WriteString("\n")
	b.WriteString(v.fields[FieldSheet].View())
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Dataset changes apply the next time the dashboard starts."))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Display"))
	b.WriteString("\n")
	b.WriteString(v.fields[FieldSampleRows].View())
	b.WriteString("\n")
	b.WriteString(v.fields[FieldHistogramBins].View())
	b.WriteString("\n\n")

	if v.saved {
		b.WriteString(v.styles.Success.Render("Settings saved"))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[↑/↓] field  [enter] save  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	for _, f := range v.fields {
		f.SetWidth(width)
	}
}

// Reset clears state so the form reloads on next entry.
func (v *View) Reset() {
	v.settings = nil
	v.err = nil
	v.saved = false
	v.fields[v.focused].Blur()
	v.focused = FieldDatasetPath
	for _, f := range v.fields {
		f.Reset()
	}
}

// Focused returns the index of the focused field.
func (v *View) Focused() int {
	return v.focused
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Saved reports whether the last save succeeded.
func (v *View) Saved() bool {
	return v.saved
}
