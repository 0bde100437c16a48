package services

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// overview describes the record table without changing it.
func overview(df dataframe.DataFrame, sampleSize int) *domain.Overview {
	out := &domain.Overview{
		Rows:    df.Nrow(),
		Sample:  sampleRows(df, sampleSize),
		Columns: make([]domain.ColumnInfo, 0, df.Ncol()),
	}

	for _, name := range df.Names() {
		col := df.Col(name)
		missing := 0
		for _, na := range col.IsNaN() {
			if na {
				missing++
			}
		}
		out.Columns = append(out.Columns, domain.ColumnInfo{
			Name:    name,
			Type:    string(col.Type()),
			NonNull: col.Len() - missing,
			Missing: missing,
		})
	}

	return out
}
