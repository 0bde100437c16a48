package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// survivedColumn returns the survival flag, checking every present value
// is 0 or 1 so that group means stay within [0,1].
func survivedColumn(df dataframe.DataFrame) ([]float64, error) {
	values, err := floatColumn(df, domain.ColumnSurvived)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: %s row %d is %v, want 0 or 1",
				domain.ErrInvalidColumn, domain.ColumnSurvived, i+1, v)
		}
	}
	return values, nil
}

// meanAcc collects the present values of one group.
type meanAcc struct {
	values []float64
}

func (a *meanAcc) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.values = append(a.values, v)
}

func (a meanAcc) count() int {
	return len(a.values)
}

func (a meanAcc) mean() domain.Metric {
	if len(a.values) == 0 {
		return domain.Undefined()
	}
	return domain.Metric(stat.Mean(a.values, nil))
}

// meansByKey groups values by numeric key and returns one mean per
// distinct key in ascending key order. Rows with a missing key are
// skipped; missing values do not count towards a group's mean.
func meansByKey(keys, values []float64) []domain.GroupMean {
	acc := make(map[float64]*meanAcc)
	for i, k := range keys {
		if math.IsNaN(k) {
			continue
		}
		a, ok := acc[k]
		if !ok {
			a = &meanAcc{}
			acc[k] = a
		}
		a.add(values[i])
	}

	ordered := make([]float64, 0, len(acc))
	for k := range acc {
		ordered = append(ordered, k)
	}
	sort.Float64s(ordered)

	out := make([]domain.GroupMean, 0, len(ordered))
	for _, k := range ordered {
		out = append(out, domain.GroupMean{
			Key:   formatKey(k),
			Mean:  acc[k].mean(),
			Count: acc[k].count(),
		})
	}
	return out
}

// formatKey renders a numeric group key, whole numbers without decimals.
func formatKey(k float64) string {
	if k == math.Trunc(k) {
		return strconv.FormatInt(int64(k), 10)
	}
	return strconv.FormatFloat(k, 'f', -1, 64)
}
