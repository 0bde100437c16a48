package services

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// correlation splits the frame on the survival flag and computes a
// Pearson matrix over the numeric columns of each partition.
func correlation(df dataframe.DataFrame) (*domain.CorrelationResult, error) {
	survived, err := survivedColumn(df)
	if err != nil {
		return nil, err
	}

	var survivors, nonSurvivors int
	for _, v := range survived {
		switch v {
		case 1:
			survivors++
		case 0:
			nonSurvivors++
		}
	}

	return &domain.CorrelationResult{
		Survivors:    partitionMatrix(df, 1, survivors, "Correlation Matrix - Survivors"),
		NonSurvivors: partitionMatrix(df, 0, nonSurvivors, "Correlation Matrix - Non-Survivors"),
	}, nil
}

// partitionMatrix filters df to rows where Survived equals flag. An empty
// partition keeps the column labels and has every cell undefined.
func partitionMatrix(df dataframe.DataFrame, flag, rows int, title string) domain.CorrMatrix {
	if rows == 0 {
		cols := numericColumns(df)
		return domain.CorrMatrix{
			Title:   title,
			Columns: cols,
			Values:  undefinedMatrix(len(cols)),
		}
	}

	part := df.Filter(dataframe.F{
		Colname:    domain.ColumnSurvived,
		Comparator: series.Eq,
		Comparando: flag,
	})
	m := corrMatrix(part)
	m.Title = title
	return m
}

// corrMatrix computes pairwise-complete Pearson coefficients between the
// numeric columns of df. A cell is undefined when fewer than two rows have
// both values or either side is constant over those rows.
func corrMatrix(df dataframe.DataFrame) domain.CorrMatrix {
	cols := numericColumns(df)
	data := make([][]float64, len(cols))
	for i, name := range cols {
		data[i] = df.Col(name).Float()
	}

	values := undefinedMatrix(len(cols))
	for i := range cols {
		for j := i; j < len(cols); j++ {
			r := pairwisePearson(data[i], data[j])
			if i == j && r.Valid() {
				r = 1
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	return domain.CorrMatrix{
		Columns:      cols,
		Values:       values,
		Observations: df.Nrow(),
	}
}

func pairwisePearson(x, y []float64) domain.Metric {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 || constant(xs) || constant(ys) {
		return domain.Undefined()
	}

	r := stat.Correlation(xs, ys, nil)
	// Rounding can push |r| a hair past 1.
	return domain.Metric(math.Max(-1, math.Min(1, r)))
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func undefinedMatrix(n int) [][]domain.Metric {
	m := make([][]domain.Metric, n)
	for i := range m {
		m[i] = make([]domain.Metric, n)
		for j := range m[i] {
			m[i][j] = domain.Undefined()
		}
	}
	return m
}
