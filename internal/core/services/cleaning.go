package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/montanaflynn/stats"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// cleanFrame returns a cleaned copy of df and a report of what changed.
// Steps run in order: median fill of numeric columns, Name drop, Sex to
// Gender mapping. Applying it to its own output changes nothing.
func cleanFrame(df dataframe.DataFrame) (dataframe.DataFrame, *domain.CleaningResult, error) {
	if hasColumn(df, domain.ColumnSex) && hasColumn(df, domain.ColumnGender) {
		return dataframe.DataFrame{}, nil, fmt.Errorf("%w: both %s and %s present, %s cannot be renamed",
			domain.ErrInvalidColumn, domain.ColumnSex, domain.ColumnGender, domain.ColumnSex)
	}

	report := &domain.CleaningResult{
		Fills:   []domain.ColumnFill{},
		Dropped: []string{},
	}

	for _, name := range numericColumns(df) {
		values := df.Col(name).Float()
		present := finite(values)
		if len(present) == len(values) || len(present) == 0 {
			continue
		}

		median, err := stats.Median(present)
		if err != nil {
			return dataframe.DataFrame{}, nil, err
		}

		filled := 0
		for i, v := range values {
			if math.IsNaN(v) {
				values[i] = median
				filled++
			}
		}

		df = df.Mutate(series.New(values, series.Float, name))
		if df.Err != nil {
			return dataframe.DataFrame{}, nil, df.Err
		}
		report.Fills = append(report.Fills, domain.ColumnFill{
			Column: name,
			Median: domain.Metric(median),
			Filled: filled,
		})
	}

	if hasColumn(df, domain.ColumnName) {
		df = df.Drop(domain.ColumnName)
		if df.Err != nil {
			return dataframe.DataFrame{}, nil, df.Err
		}
		report.Dropped = append(report.Dropped, domain.ColumnName)
	}

	if hasColumn(df, domain.ColumnSex) {
		sex, present, err := stringColumn(df, domain.ColumnSex)
		if err != nil {
			return dataframe.DataFrame{}, nil, err
		}
		codes := make([]string, len(sex))
		for i, v := range sex {
			code, ok := domain.GenderCode(v)
			if !present[i] || !ok {
				codes[i] = naToken
				report.Unmapped++
				continue
			}
			codes[i] = strconv.Itoa(code)
		}

		df = df.Mutate(series.New(codes, series.Int, domain.ColumnSex)).
			Rename(domain.ColumnGender, domain.ColumnSex)
		if df.Err != nil {
			return dataframe.DataFrame{}, nil, df.Err
		}
	}
	if hasColumn(df, domain.ColumnGender) {
		report.GenderColumn = domain.ColumnGender
	}

	report.Rows = df.Nrow()
	return df, report, nil
}

// cleaning runs the cleaning steps and samples the result.
func cleaning(df dataframe.DataFrame, sampleSize int) (*domain.CleaningResult, error) {
	cleaned, report, err := cleanFrame(df)
	if err != nil {
		return nil, err
	}
	report.Sample = sampleRows(cleaned, sampleSize)
	return report, nil
}
