// Package styles provides colour themes and styling shared by the TUI and
// the section renderer.
package styles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the colour palette and styling for the dashboard.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Cold, Neutral and Hot are the stops of the heat map ramp.
	Cold    lipgloss.Color
	Neutral lipgloss.Color
	Hot     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Cold:       lipgloss.Color("#3B4CC0"), // Coolwarm blue
		Neutral:    lipgloss.Color("#DDDDDD"),
		Hot:        lipgloss.Color("#B40426"), // Coolwarm red
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// Bar style for chart bars.
	Bar lipgloss.Style

	// Marker style for density and outlier markers.
	Marker lipgloss.Style

	// Code style for snippet blocks.
	Code lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Bar: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Marker: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning),

		Code: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Success).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Ramp maps v within [lo, hi] onto the Cold, Neutral, Hot ramp, blending
// in Lab space. NaN maps to Muted; out-of-range values are clamped.
func (s *Styles) Ramp(v, lo, hi float64) lipgloss.Color {
	if math.IsNaN(v) || hi <= lo {
		return s.theme.Muted
	}
	t := (v - lo) / (hi - lo)
	t = math.Max(0, math.Min(1, t))

	cold, err1 := colorful.Hex(string(s.theme.Cold))
	mid, err2 := colorful.Hex(string(s.theme.Neutral))
	hot, err3 := colorful.Hex(string(s.theme.Hot))
	if err1 != nil || err2 != nil || err3 != nil {
		return s.theme.Muted
	}

	if t < 0.5 {
		return lipgloss.Color(cold.BlendLab(mid, t*2).Clamped().Hex())
	}
	return lipgloss.Color(mid.BlendLab(hot, (t-0.5)*2).Clamped().Hex())
}

// Cell styles a heat map cell with a ramp background and readable text.
func (s *Styles) Cell(v, lo, hi float64) lipgloss.Style {
	bg := s.Ramp(v, lo, hi)
	fg := lipgloss.Color("#11111B")
	if c, err := colorful.Hex(string(bg)); err == nil {
		if _, _, l := c.Hsl(); l < 0.5 {
			fg = lipgloss.Color("#F5F5F5")
		}
	}
	return lipgloss.NewStyle().Background(bg).Foreground(fg)
}
