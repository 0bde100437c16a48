package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// Sample renders a table sample, or a note when it has no rows.
func (r *Renderer) Sample(s domain.TableSample) string {
	if len(s.Rows) == 0 {
		return r.muted("(no rows)")
	}
	return r.table(s.Columns, s.Rows)
}

func (r *Renderer) table(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	head := cell
	if !r.plain {
		head = r.styles.Subtitle.Padding(0, 1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		})
	if !r.plain {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(r.styles.Theme().Border))
	}
	return t.String()
}
