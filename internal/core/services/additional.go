package services

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// whiskerSpan is the IQR multiple beyond which fares are outliers.
const whiskerSpan = 1.5

// additional computes the five independent sub-views.
func additional(df dataframe.DataFrame, bins int) (*domain.AdditionalAnalysis, error) {
	if err := requireColumns(df, domain.ColumnSurvived, domain.ColumnPclass,
		domain.ColumnSex, domain.ColumnAge, domain.ColumnFare); err != nil {
		return nil, err
	}

	survived, err := survivedColumn(df)
	if err != nil {
		return nil, err
	}
	ages, err := floatColumn(df, domain.ColumnAge)
	if err != nil {
		return nil, err
	}
	classes, err := floatColumn(df, domain.ColumnPclass)
	if err != nil {
		return nil, err
	}
	fares, err := floatColumn(df, domain.ColumnFare)
	if err != nil {
		return nil, err
	}
	sex, present, err := stringColumn(df, domain.ColumnSex)
	if err != nil {
		return nil, err
	}

	return &domain.AdditionalAnalysis{
		AgeDistribution: ageHistogram(ages, bins),
		SurvivalByClass: domain.GroupMeans{
			Title:      "Survival Rate by Passenger Class",
			KeyLabel:   "Passenger Class",
			ValueLabel: "Survival Probability",
			Groups:     meansByKey(classes, survived),
		},
		SurvivalByAgeGroup: survivalByAgeGroup(ages, survived),
		FareBySurvival:     fareBoxPlot(fares, survived),
		ClassGender:        classGenderGrid(classes, sex, present, survived),
	}, nil
}

// sturgesBins returns the Sturges' rule bin count for n observations.
func sturgesBins(n int) int {
	if n < 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// ageHistogram bins the present ages into equal-width bins and overlays a
// Gaussian kernel density estimate evaluated at the bin midpoints, scaled
// to count units so both share an axis.
func ageHistogram(ages []float64, bins int) domain.Histogram {
	values := finite(ages)
	h := domain.Histogram{
		Column:       domain.ColumnAge,
		Bins:         []domain.HistogramBin{},
		Density:      []domain.DensityPoint{},
		Observations: len(values),
		Excluded:     len(ages) - len(values),
	}
	if len(values) == 0 {
		return h
	}

	if bins <= 0 {
		bins = sturgesBins(len(values))
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
		bins = 1
	}
	width := (hi - lo) / float64(bins)

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	for i, c := range counts {
		lower := lo + float64(i)*width
		upper := lo + float64(i+1)*width
		if i == bins-1 {
			upper = hi
		}
		h.Bins = append(h.Bins, domain.HistogramBin{Lower: lower, Upper: upper, Count: c})
	}

	if len(values) < 2 {
		return h
	}
	sd := stat.StdDev(values, nil)
	if sd == 0 || math.IsNaN(sd) {
		return h
	}
	// Scott's rule.
	bw := sd * math.Pow(float64(len(values)), -0.2)
	scale := float64(len(values)) * width
	for _, b := range h.Bins {
		x := (b.Lower + b.Upper) / 2
		var sum float64
		for _, v := range values {
			sum += distuv.UnitNormal.Prob((x - v) / bw)
		}
		density := sum / (float64(len(values)) * bw)
		h.Density = append(h.Density, domain.DensityPoint{X: x, Y: density * scale})
	}
	return h
}

// survivalByAgeGroup reports mean survival per age group in fixed order.
// Groups without members keep their bar with an undefined mean.
func survivalByAgeGroup(ages, survived []float64) domain.GroupMeans {
	groups := domain.AgeGroups()
	acc := make([]meanAcc, len(groups))
	for i, age := range ages {
		g, ok := domain.AgeGroupFor(age)
		if !ok {
			continue
		}
		acc[g].add(survived[i])
	}

	out := domain.GroupMeans{
		Title:      "Survival Rate by Age Group",
		KeyLabel:   "Age Group",
		ValueLabel: "Survival Probability",
		Groups:     make([]domain.GroupMean, 0, len(groups)),
	}
	for _, g := range groups {
		out.Groups = append(out.Groups, domain.GroupMean{
			Key:   g.String(),
			Mean:  acc[g].mean(),
			Count: acc[g].count(),
		})
	}
	return out
}

// fareBoxPlot summarises fares for non-survivors then survivors.
func fareBoxPlot(fares, survived []float64) domain.BoxPlot {
	split := map[float64][]float64{0: {}, 1: {}}
	for i, f := range fares {
		if math.IsNaN(f) || math.IsInf(f, 0) || math.IsNaN(survived[i]) {
			continue
		}
		split[survived[i]] = append(split[survived[i]], f)
	}

	return domain.BoxPlot{
		Title:  "Fare vs Survival",
		Column: domain.ColumnFare,
		Boxes: []domain.BoxSummary{
			boxSummary("0", split[0]),
			boxSummary("1", split[1]),
		},
	}
}

// boxSummary computes Tukey hinges with whiskers at the most extreme
// values within 1.5 IQR of the box.
func boxSummary(group string, values []float64) domain.BoxSummary {
	box := domain.BoxSummary{
		Group:        group,
		Count:        len(values),
		LowerWhisker: domain.Undefined(),
		Q1:           domain.Undefined(),
		Median:       domain.Undefined(),
		Q3:           domain.Undefined(),
		UpperWhisker: domain.Undefined(),
		Outliers:     []float64{},
	}
	if len(values) == 0 {
		return box
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1, q2, q3 := sorted[0], sorted[0], sorted[0]
	if len(sorted) > 1 {
		quartiles, err := stats.Quartile(sorted)
		if err != nil {
			return box
		}
		q1, q2, q3 = quartiles.Q1, quartiles.Q2, quartiles.Q3
	}

	iqr := q3 - q1
	lowFence, highFence := q1-whiskerSpan*iqr, q3+whiskerSpan*iqr
	lower, upper := math.Inf(1), math.Inf(-1)
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			box.Outliers = append(box.Outliers, v)
			continue
		}
		lower = math.Min(lower, v)
		upper = math.Max(upper, v)
	}

	box.Q1 = domain.Metric(q1)
	box.Median = domain.Metric(q2)
	box.Q3 = domain.Metric(q3)
	box.LowerWhisker = domain.Metric(lower)
	box.UpperWhisker = domain.Metric(upper)
	return box
}

// classGenderGrid reports mean survival with classes as rows in ascending
// order and sexes as columns in ascending order.
func classGenderGrid(classes []float64, sex []string, present []bool, survived []float64) domain.HeatGrid {
	rowIndex := map[float64]int{}
	colIndex := map[string]int{}
	var rowKeys []float64
	var colKeys []string
	for i := range classes {
		if math.IsNaN(classes[i]) || !present[i] {
			continue
		}
		if _, ok := rowIndex[classes[i]]; !ok {
			rowIndex[classes[i]] = 0
			rowKeys = append(rowKeys, classes[i])
		}
		if _, ok := colIndex[sex[i]]; !ok {
			colIndex[sex[i]] = 0
			colKeys = append(colKeys, sex[i])
		}
	}
	sort.Float64s(rowKeys)
	sort.Strings(colKeys)
	for i, k := range rowKeys {
		rowIndex[k] = i
	}
	for i, k := range colKeys {
		colIndex[k] = i
	}

	acc := make([][]meanAcc, len(rowKeys))
	for i := range acc {
		acc[i] = make([]meanAcc, len(colKeys))
	}
	for i := range classes {
		if math.IsNaN(classes[i]) || !present[i] {
			continue
		}
		acc[rowIndex[classes[i]]][colIndex[sex[i]]].add(survived[i])
	}

	grid := domain.HeatGrid{
		Title:    "Survival Rate by Class and Gender",
		RowLabel: "Pclass",
		ColLabel: "Sex",
		Rows:     make([]string, len(rowKeys)),
		Cols:     colKeys,
		Cells:    make([][]domain.GridCell, len(rowKeys)),
	}
	if grid.Cols == nil {
		grid.Cols = []string{}
	}
	for i, k := range rowKeys {
		grid.Rows[i] = formatKey(k)
		grid.Cells[i] = make([]domain.GridCell, len(colKeys))
		for j := range colKeys {
			grid.Cells[i][j] = domain.GridCell{Value: acc[i][j].mean(), Count: acc[i][j].count()}
		}
	}
	return grid
}
