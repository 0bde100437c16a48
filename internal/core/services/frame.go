package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// naToken is the value gota reads as a missing element.
const naToken = "NaN"

// isMissing reports whether a raw cell is treated as missing.
func isMissing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NA", "NaN", "nan", "<nil>":
		return true
	default:
		return false
	}
}

// nonFinite reports whether a cell parses as a float but is not finite,
// such as "inf" or "-Infinity". Numeric columns treat these as missing.
func nonFinite(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && (math.IsInf(f, 0) || math.IsNaN(f))
}

// inferType picks the narrowest column type that holds every non-missing
// value. A column with no values at all is float, so it stays numeric.
func inferType(values []string) series.Type {
	isInt, isFloat, seen := true, true, false
	for _, v := range values {
		if isMissing(v) || nonFinite(v) {
			continue
		}
		seen = true
		v = strings.TrimSpace(v)
		if isInt {
			if _, err := strconv.Atoi(v); err != nil {
				isInt = false
			}
		}
		if !isInt {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				isFloat = false
				break
			}
		}
	}
	switch {
	case !seen:
		return series.Float
	case isInt:
		return series.Int
	case isFloat:
		return series.Float
	default:
		return series.String
	}
}

// newFrame builds the immutable record table from a raw table.
func newFrame(tbl *domain.RawTable) (dataframe.DataFrame, error) {
	if tbl == nil || len(tbl.Header) == 0 {
		return dataframe.DataFrame{}, domain.ErrEmptyDataset
	}

	cols := make([]series.Series, len(tbl.Header))
	for c, name := range tbl.Header {
		values := make([]string, len(tbl.Records))
		for r, rec := range tbl.Records {
			if c < len(rec) {
				values[r] = rec[c]
			}
		}
		typ := inferType(values)
		for i, v := range values {
			if isMissing(v) || (typ != series.String && nonFinite(v)) {
				values[i] = naToken
			} else if typ != series.String {
				values[i] = strings.TrimSpace(v)
			}
		}
		cols[c] = series.New(values, typ, name)
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("building record table: %w", df.Err)
	}
	return df, nil
}

// hasColumn reports whether the frame has the named column.
func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// requireColumns returns ErrMissingColumn naming every absent column.
func requireColumns(df dataframe.DataFrame, names ...string) error {
	var missing []string
	for _, n := range names {
		if !hasColumn(df, n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// isNumeric reports whether a series holds numbers.
func isNumeric(s series.Series) bool {
	return s.Type() == series.Int || s.Type() == series.Float
}

// numericColumns returns the names of int and float columns in frame order.
func numericColumns(df dataframe.DataFrame) []string {
	var names []string
	for _, n := range df.Names() {
		if isNumeric(df.Col(n)) {
			names = append(names, n)
		}
	}
	return names
}

// floatColumn returns a numeric column as floats with NaN for missing cells.
func floatColumn(df dataframe.DataFrame, name string) ([]float64, error) {
	if err := requireColumns(df, name); err != nil {
		return nil, err
	}
	col := df.Col(name)
	if !isNumeric(col) {
		return nil, fmt.Errorf("%w: %s is %s, want numeric", domain.ErrInvalidColumn, name, col.Type())
	}
	return col.Float(), nil
}

// stringColumn returns a column as strings with ok == false for missing cells.
func stringColumn(df dataframe.DataFrame, name string) ([]string, []bool, error) {
	if err := requireColumns(df, name); err != nil {
		return nil, nil, err
	}
	col := df.Col(name)
	values := make([]string, col.Len())
	ok := make([]bool, col.Len())
	for i := 0; i < col.Len(); i++ {
		e := col.Elem(i)
		if e.IsNA() {
			continue
		}
		values[i] = e.String()
		ok[i] = true
	}
	return values, ok, nil
}

// formatCell renders one element the way the sample tables show it.
// Whole floats keep one decimal so a filled Age of 28 reads "28.0".
func formatCell(e series.Element) string {
	if e.IsNA() {
		return naToken
	}
	if e.Type() == series.Float {
		f := e.Float()
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return strconv.FormatFloat(f, 'f', 1, 64)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return e.String()
}

// sampleRows returns the first n rows of the frame as strings.
func sampleRows(df dataframe.DataFrame, n int) domain.TableSample {
	sample := domain.TableSample{Columns: df.Names(), Rows: [][]string{}}
	rows := df.Nrow()
	if n < rows {
		rows = n
	}
	for r := 0; r < rows; r++ {
		row := make([]string, df.Ncol())
		for c := 0; c < df.Ncol(); c++ {
			row[c] = formatCell(df.Elem(r, c))
		}
		sample.Rows = append(sample.Rows, row)
	}
	return sample
}

// finite drops NaN and infinite values.
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
