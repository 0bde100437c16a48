// Package render turns section results into terminal text: tables, bar
// charts, histograms, heat maps and box plots. The TUI, the show command,
// the MCP server and the HTTP API all render through it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// DefaultWidth is used when the caller does not know the terminal width.
const DefaultWidth = 100

// Undefined is shown wherever a metric has no value.
const Undefined = "—"

// Renderer renders section results. A plain renderer emits no ANSI
// sequences and is used for non-terminal output.
type Renderer struct {
	styles *styles.Styles
	width  int
	plain  bool
}

// New creates a styled renderer. A nil styles uses the default theme.
func New(s *styles.Styles, width int) *Renderer {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{styles: s, width: width}
}

// Plain creates a renderer without colour or text attributes.
func Plain(width int) *Renderer {
	r := New(nil, width)
	r.plain = true
	return r
}

// Width returns the target line width.
func (r *Renderer) Width() int {
	return r.width
}

// apply renders text with st unless the renderer is plain.
func (r *Renderer) apply(st lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return st.Render(text)
}

func (r *Renderer) title(text string) string {
	return r.apply(r.styles.Title, text)
}

func (r *Renderer) heading(text string) string {
	return r.apply(r.styles.Subtitle, "### "+text)
}

func (r *Renderer) muted(text string) string {
	return r.apply(r.styles.Muted, text)
}

// Section renders a complete section result. With showCode the section's
// code snippet is appended.
func (r *Renderer) Section(res *domain.SectionResult, showCode bool) string {
	var b strings.Builder
	b.WriteString(r.title(res.Section.String()))
	b.WriteString("\n\n")

	switch res.Section {
	case domain.SectionOverview:
		if res.Overview != nil {
			b.WriteString(r.Overview(res.Overview))
		}
	case domain.SectionCleaning:
		if res.Cleaning != nil {
			b.WriteString(r.Cleaning(res.Cleaning))
		}
	case domain.SectionSurvival:
		if res.Survival != nil {
			b.WriteString(r.Bars(*res.Survival))
		}
	case domain.SectionCorrelation:
		if res.Correlation != nil {
			b.WriteString(r.Correlation(res.Correlation))
		}
	case domain.SectionAdditional:
		if res.Additional != nil {
			b.WriteString(r.Additional(res.Additional))
		}
	}

	if showCode {
		b.WriteString("\n")
		b.WriteString(r.heading("Code"))
		b.WriteString("\n")
		b.WriteString(r.Code(res.Section))
		b.WriteString("\n")
	}
	return b.String()
}

// Overview renders the dataset overview.
func (r *Renderer) Overview(o *domain.Overview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", r.muted(fmt.Sprintf("%d rows x %d columns", o.Rows, len(o.Columns))))

	b.WriteString(r.heading("Sample Data"))
	b.WriteString("\n")
	b.WriteString(r.Sample(o.Sample))
	b.WriteString("\n\n")

	b.WriteString(r.heading("Missing Values"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(o.Columns))
	for _, c := range o.Columns {
		rows = append(rows, []string{c.Name, c.Type, fmt.Sprint(c.NonNull), fmt.Sprint(c.Missing)})
	}
	b.WriteString(r.table([]string{"Column", "Type", "Non-Null", "Missing"}, rows))
	b.WriteString("\n")
	return b.String()
}

// Cleaning renders the cleaning report and cleaned sample.
func (r *Renderer) Cleaning(c *domain.CleaningResult) string {
	var b strings.Builder

	b.WriteString(r.heading("Median Fills"))
	b.WriteString("\n")
	if len(c.Fills) == 0 {
		b.WriteString(r.muted("No missing numeric values."))
	} else {
		rows := make([][]string, 0, len(c.Fills))
		for _, f := range c.Fills {
			rows = append(rows, []string{f.Column, f.Median.Format(2), fmt.Sprint(f.Filled)})
		}
		b.WriteString(r.table([]string{"Column", "Median", "Filled"}, rows))
	}
	b.WriteString("\n\n")

	if len(c.Dropped) > 0 {
		fmt.Fprintf(&b, "Dropped columns: %s\n", strings.Join(c.Dropped, ", "))
	}
	if c.GenderColumn != "" {
		fmt.Fprintf(&b, "Sex mapped to %s (male=0, female=1), unmapped values: %d\n",
			c.GenderColumn, c.Unmapped)
	}
	b.WriteString("\n")

	b.WriteString(r.heading("Cleaned Dataset Sample"))
	b.WriteString("\n")
	b.WriteString(r.Sample(c.Sample))
	b.WriteString("\n")
	return b.String()
}

// Correlation renders both partition matrices.
func (r *Renderer) Correlation(c *domain.CorrelationResult) string {
	var b strings.Builder
	b.WriteString(r.Matrix(c.Survivors))
	b.WriteString("\n")
	b.WriteString(r.Matrix(c.NonSurvivors))
	return b.String()
}

// Additional renders the five sub-views in order.
func (r *Renderer) Additional(a *domain.AdditionalAnalysis) string {
	parts := []string{
		r.Histogram(a.AgeDistribution),
		r.Bars(a.SurvivalByClass),
		r.Bars(a.SurvivalByAgeGroup),
		r.BoxPlot(a.FareBySurvival),
		r.Grid(a.ClassGender),
	}
	return strings.Join(parts, "\n")
}

// Code renders the section's snippet in a bordered block.
func (r *Renderer) Code(section domain.Section) string {
	code := Snippet(section)
	if r.plain {
		return code
	}
	return r.styles.Code.Render(code)
}

// Error renders a failed render pass.
func (r *Renderer) Error(section domain.Section, err error) string {
	return r.title(section.String()) + "\n\n" + r.apply(r.styles.Error, "✗ "+err.Error()) + "\n"
}
