package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// shades stand in for the colour ramp when rendering plain text.
var shades = []rune{' ', '░', '▒', '▓', '█'}

const maxLabel = 11

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// shade returns the plain-text glyph for v within [lo, hi].
func shade(v, lo, hi float64) rune {
	if math.IsNaN(v) {
		return ' '
	}
	t := clamp01((v - lo) / (hi - lo))
	return shades[int(math.Round(t*float64(len(shades)-1)))]
}

// cell renders one annotated heat map cell of the given width.
func (r *Renderer) cell(v domain.Metric, lo, hi float64, width int) string {
	text := metricText(v, 2)
	if r.plain {
		return fmt.Sprintf("%c%*s", shade(v.Float(), lo, hi), width-1, text)
	}
	return r.styles.Cell(v.Float(), lo, hi).Render(fmt.Sprintf("%*s ", width-1, text))
}

// heat renders a labelled grid of metrics.
func (r *Renderer) heat(rowLabels, colLabels []string, values [][]domain.Metric, lo, hi float64) string {
	rows := make([]string, len(rowLabels))
	for i, l := range rowLabels {
		rows[i] = truncate(l, maxLabel)
	}
	gutter := labelWidth(rows)
	width := 7
	cols := make([]string, len(colLabels))
	for i, l := range colLabels {
		cols[i] = truncate(l, maxLabel)
		width = max(width, lipgloss.Width(cols[i])+1)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter+1))
	for _, c := range cols {
		b.WriteString(fmt.Sprintf("%*s", width, c))
	}
	b.WriteString("\n")
	for i, l := range rows {
		b.WriteString(pad(l, gutter))
		b.WriteString(" ")
		for j := range cols {
			v := domain.Undefined()
			if i < len(values) && j < len(values[i]) {
				v = values[i][j]
			}
			b.WriteString(r.cell(v, lo, hi, width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Matrix renders a correlation matrix on a [-1, 1] ramp. A matrix over
// no rows renders as empty.
func (r *Renderer) Matrix(m domain.CorrMatrix) string {
	var b strings.Builder
	b.WriteString(r.heading(m.Title))
	b.WriteString("\n")
	if m.Empty() {
		b.WriteString(r.muted("(empty: no rows in this partition)"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(r.heat(m.Columns, m.Columns, m.Values, -1, 1))
	b.WriteString(r.muted(fmt.Sprintf("n=%d, pairwise-complete Pearson, %s = undefined", m.Observations, Undefined)))
	b.WriteString("\n")
	return b.String()
}

// Grid renders a two-way table of means on a [0, 1] ramp.
func (r *Renderer) Grid(g domain.HeatGrid) string {
	var b strings.Builder
	b.WriteString(r.heading(g.Title))
	b.WriteString("\n")
	if len(g.Rows) == 0 || len(g.Cols) == 0 {
		b.WriteString(r.muted("(no data)"))
		b.WriteString("\n")
		return b.String()
	}

	values := make([][]domain.Metric, len(g.Cells))
	for i, row := range g.Cells {
		values[i] = make([]domain.Metric, len(row))
		for j, c := range row {
			values[i][j] = c.Value
		}
	}
	rows := make([]string, len(g.Rows))
	for i, l := range g.Rows {
		rows[i] = g.RowLabel + " " + l
	}
	b.WriteString(r.heat(rows, g.Cols, values, 0, 1))
	b.WriteString(r.muted(fmt.Sprintf("rows: %s, columns: %s", g.RowLabel, g.ColLabel)))
	b.WriteString("\n")
	return b.String()
}
