package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

const (
	barFull    = '█'
	barEmpty   = '░'
	markerRune = '◆'
	whisker    = '─'
	boxFill    = '▒'
	medianRune = '┃'
	outlierDot = '•'
)

// metricText formats m with prec decimals, or Undefined.
func metricText(m domain.Metric, prec int) string {
	if !m.Valid() {
		return Undefined
	}
	return m.Format(prec)
}

// chartWidth is the number of cells available to a chart body after a
// label gutter of the given width.
func (r *Renderer) chartWidth(gutter int) int {
	w := r.width - gutter - 16
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

// paint renders a rune line, styling runs of chart glyphs.
func (r *Renderer) paint(line []rune) string {
	if r.plain {
		return string(line)
	}
	var b strings.Builder
	start := 0
	styleOf := func(c rune) *lipgloss.Style {
		switch c {
		case barFull, boxFill, medianRune:
			return &r.styles.Bar
		case markerRune, outlierDot:
			return &r.styles.Marker
		case barEmpty, whisker:
			return &r.styles.Muted
		}
		return nil
	}
	for i := 1; i <= len(line); i++ {
		if i < len(line) && styleOf(line[i]) == styleOf(line[start]) {
			continue
		}
		seg := string(line[start:i])
		if st := styleOf(line[start]); st != nil {
			seg = st.Render(seg)
		}
		b.WriteString(seg)
		start = i
	}
	return b.String()
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		if n := lipgloss.Width(l); n > w {
			w = n
		}
	}
	return w
}

func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Bars renders group means as horizontal bars on a fixed [0,1] scale.
func (r *Renderer) Bars(g domain.GroupMeans) string {
	var b strings.Builder
	b.WriteString(r.heading(g.Title))
	b.WriteString("\n")

	labels := make([]string, len(g.Groups))
	for i, grp := range g.Groups {
		labels[i] = grp.Key
		if grp.Label != "" && grp.Label != grp.Key {
			labels[i] = grp.Key + " " + grp.Label
		}
	}
	gutter := labelWidth(labels)
	width := r.chartWidth(gutter)

	for i, grp := range g.Groups {
		line := make([]rune, width)
		filled := 0
		if grp.Mean.Valid() {
			filled = int(math.Round(clamp01(grp.Mean.Float()) * float64(width)))
		}
		for j := range line {
			if j < filled {
				line[j] = barFull
			} else {
				line[j] = barEmpty
			}
		}
		fmt.Fprintf(&b, "%s │%s│ %5s  n=%d\n",
			pad(labels[i], gutter), r.paint(line), metricText(grp.Mean, 2), grp.Count)
	}

	axis := pad("0", width-1) + "1"
	fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", gutter), r.muted(axis))
	b.WriteString(r.muted(fmt.Sprintf("%s by %s", g.ValueLabel, g.KeyLabel)))
	b.WriteString("\n")
	return b.String()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Histogram renders bin counts as bars with the smoothed density marked
// on each row.
func (r *Renderer) Histogram(h domain.Histogram) string {
	var b strings.Builder
	b.WriteString(r.heading(h.Column + " Distribution"))
	b.WriteString("\n")
	if len(h.Bins) == 0 {
		b.WriteString(r.muted(fmt.Sprintf("No %s values (%d missing excluded).", h.Column, h.Excluded)))
		b.WriteString("\n")
		return b.String()
	}

	labels := make([]string, len(h.Bins))
	for i, bin := range h.Bins {
		closer := ")"
		if i == len(h.Bins)-1 {
			closer = "]"
		}
		labels[i] = fmt.Sprintf("[%.1f, %.1f%s", bin.Lower, bin.Upper, closer)
	}
	gutter := labelWidth(labels)
	width := r.chartWidth(gutter)

	scale := 0.0
	for _, bin := range h.Bins {
		scale = math.Max(scale, float64(bin.Count))
	}
	for _, d := range h.Density {
		scale = math.Max(scale, d.Y)
	}
	if scale == 0 {
		scale = 1
	}

	for i, bin := range h.Bins {
		line := []rune(strings.Repeat(" ", width))
		filled := int(math.Round(float64(bin.Count) / scale * float64(width)))
		for j := 0; j < filled && j < width; j++ {
			line[j] = barFull
		}
		if i < len(h.Density) && len(h.Density) == len(h.Bins) {
			pos := int(math.Round(h.Density[i].Y / scale * float64(width-1)))
			line[max(0, min(width-1, pos))] = markerRune
		}
		fmt.Fprintf(&b, "%s │%s %d\n", pad(labels[i], gutter), r.paint(line), bin.Count)
	}

	note := fmt.Sprintf("n=%d, %d missing excluded", h.Observations, h.Excluded)
	if len(h.Density) > 0 {
		note += fmt.Sprintf(", %c smoothed density", markerRune)
	}
	b.WriteString(r.muted(note))
	b.WriteString("\n")
	return b.String()
}

// BoxPlot renders box summaries on one shared axis.
func (r *Renderer) BoxPlot(p domain.BoxPlot) string {
	var b strings.Builder
	b.WriteString(r.heading(p.Title))
	b.WriteString("\n")

	lo, hi := math.Inf(1), math.Inf(-1)
	labels := make([]string, len(p.Boxes))
	for i, box := range p.Boxes {
		labels[i] = box.Group
		for _, m := range []domain.Metric{box.LowerWhisker, box.UpperWhisker} {
			if m.Valid() {
				lo = math.Min(lo, m.Float())
				hi = math.Max(hi, m.Float())
			}
		}
		for _, o := range box.Outliers {
			if domain.Metric(o).Valid() {
				lo = math.Min(lo, o)
				hi = math.Max(hi, o)
			}
		}
	}
	gutter := labelWidth(labels)
	width := r.chartWidth(gutter)

	if math.IsInf(lo, 1) {
		for i, box := range p.Boxes {
			fmt.Fprintf(&b, "%s │ %s  n=%d\n", pad(labels[i], gutter), Undefined, box.Count)
		}
		return b.String()
	}

	// pos maps a value onto the axis, clamped to the line.
	pos := func(v float64) int {
		if hi == lo {
			return width / 2
		}
		x := math.Round((v - lo) / (hi - lo) * float64(width-1))
		if math.IsNaN(x) || x < 0 {
			return 0
		}
		return int(math.Min(x, float64(width-1)))
	}

	for i, box := range p.Boxes {
		line := []rune(strings.Repeat(" ", width))
		if box.Median.Valid() {
			lw, uw := pos(box.LowerWhisker.Float()), pos(box.UpperWhisker.Float())
			q1, q3 := pos(box.Q1.Float()), pos(box.Q3.Float())
			for j := lw; j <= uw; j++ {
				line[j] = whisker
			}
			for j := q1; j <= q3; j++ {
				line[j] = boxFill
			}
			line[lw], line[uw] = '├', '┤'
			line[pos(box.Median.Float())] = medianRune
			for _, o := range box.Outliers {
				if domain.Metric(o).Valid() {
					line[pos(o)] = outlierDot
				}
			}
		}
		fmt.Fprintf(&b, "%s │%s\n", pad(labels[i], gutter), r.paint(line))
	}

	axis := pad(fmt.Sprintf("%.2f", lo), width-len(fmt.Sprintf("%.2f", hi))) + fmt.Sprintf("%.2f", hi)
	fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", gutter), r.muted(axis))

	rows := make([][]string, 0, len(p.Boxes))
	for _, box := range p.Boxes {
		rows = append(rows, []string{
			box.Group,
			fmt.Sprint(box.Count),
			metricText(box.LowerWhisker, 2),
			metricText(box.Q1, 2),
			metricText(box.Median, 2),
			metricText(box.Q3, 2),
			metricText(box.UpperWhisker, 2),
			fmt.Sprint(len(box.Outliers)),
		})
	}
	b.WriteString(r.table([]string{p.Column, "n", "Low", "Q1", "Median", "Q3", "High", "Outliers"}, rows))
	b.WriteString("\n")
	return b.String()
}
