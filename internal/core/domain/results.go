package domain

import "time"

// TableSample is the leading rows of a table rendered as strings.
type TableSample struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	NonNull int    `json:"non_null"`
	Missing int    `json:"missing"`
}

// Overview is the Dataset Overview section output.
type Overview struct {
	Rows    int          `json:"rows"`
	Sample  TableSample  `json:"sample"`
	Columns []ColumnInfo `json:"columns"`
}

// ColumnFill records a median fill applied to one numeric column.
type ColumnFill struct {
	Column string `json:"column"`
	Median Metric `json:"median"`
	Filled int    `json:"filled"`
}

// CleaningResult is the Data Cleaning section output.
type CleaningResult struct {
	Rows         int          `json:"rows"`
	Sample       TableSample  `json:"sample"`
	Fills        []ColumnFill `json:"fills"`
	Dropped      []string     `json:"dropped"`
	GenderColumn string       `json:"gender_column"`

	// Unmapped counts Sex cells that did not map to a gender code,
	// missing cells included.
	Unmapped int `json:"unmapped"`
}

// GroupMean is the mean of a value column within one group.
type GroupMean struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Mean  Metric `json:"mean"`
	Count int    `json:"count"`
}

// GroupMeans is an ordered set of group means, rendered as a bar chart.
type GroupMeans struct {
	Title      string      `json:"title"`
	KeyLabel   string      `json:"key_label"`
	ValueLabel string      `json:"value_label"`
	Groups     []GroupMean `json:"groups"`
}

// CorrMatrix is a square correlation matrix over numeric columns.
type CorrMatrix struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Values  [][]Metric `json:"values"`

	// Observations is the number of rows in the partition.
	Observations int `json:"observations"`
}

// Empty returns true if the matrix was computed over no rows.
func (m CorrMatrix) Empty() bool {
	return m.Observations == 0
}

// CorrelationResult is the Correlation Analysis section output.
type CorrelationResult struct {
	Survivors    CorrMatrix `json:"survivors"`
	NonSurvivors CorrMatrix `json:"non_survivors"`
}

// HistogramBin is a half-open bin [Lower, Upper); the last bin is closed.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// DensityPoint is a smoothed density estimate scaled to count units.
type DensityPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Histogram is a binned distribution with a smoothed overlay.
type Histogram struct {
	Column       string         `json:"column"`
	Bins         []HistogramBin `json:"bins"`
	Density      []DensityPoint `json:"density"`
	Observations int            `json:"observations"`

	// Excluded counts missing values left out of the histogram.
	Excluded int `json:"excluded"`
}

// BoxSummary is a five-number summary with outliers.
type BoxSummary struct {
	Group        string    `json:"group"`
	Count        int       `json:"count"`
	LowerWhisker Metric    `json:"lower_whisker"`
	Q1           Metric    `json:"q1"`
	Median       Metric    `json:"median"`
	Q3           Metric    `json:"q3"`
	UpperWhisker Metric    `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// BoxPlot groups box summaries over one value column.
type BoxPlot struct {
	Title  string       `json:"title"`
	Column string       `json:"column"`
	Boxes  []BoxSummary `json:"boxes"`
}

// GridCell is one cell of a HeatGrid.
type GridCell struct {
	Value Metric `json:"value"`
	Count int    `json:"count"`
}

// HeatGrid is a two-way table of means.
type HeatGrid struct {
	Title    string       `json:"title"`
	RowLabel string       `json:"row_label"`
	ColLabel string       `json:"col_label"`
	Rows     []string     `json:"rows"`
	Cols     []string     `json:"cols"`
	Cells    [][]GridCell `json:"cells"`
}

// AdditionalAnalysis is the Additional Analysis section output.
type AdditionalAnalysis struct {
	AgeDistribution    Histogram  `json:"age_distribution"`
	SurvivalByClass    GroupMeans `json:"survival_by_class"`
	SurvivalByAgeGroup GroupMeans `json:"survival_by_age_group"`
	FareBySurvival     BoxPlot    `json:"fare_by_survival"`
	ClassGender        HeatGrid   `json:"class_gender"`
}

// SectionResult is the output of one render pass. Exactly one of the
// section payloads is set, matching Section.
type SectionResult struct {
	PassID      string              `json:"pass_id"`
	Section     Section             `json:"section"`
	RenderedAt  time.Time           `json:"rendered_at"`
	Duration    time.Duration       `json:"duration_ns"`
	Overview    *Overview           `json:"overview,omitempty"`
	Cleaning    *CleaningResult     `json:"cleaning,omitempty"`
	Survival    *GroupMeans         `json:"survival,omitempty"`
	Correlation *CorrelationResult  `json:"correlation,omitempty"`
	Additional  *AdditionalAnalysis `json:"additional,omitempty"`
}
