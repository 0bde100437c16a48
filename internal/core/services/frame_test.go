package services

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   series.Type
	}{
		{"ints", []string{"1", "2", " 3 "}, series.Int},
		{"ints with missing", []string{"1", "", "NA"}, series.Int},
		{"floats", []string{"1", "2.5"}, series.Float},
		{"strings", []string{"1", "male"}, series.String},
		{"all missing", []string{"", "NaN"}, series.Float},
		{"ints with infinity", []string{"1", "inf"}, series.Int},
		{"floats with infinity", []string{"2.5", "-Infinity"}, series.Float},
		{"infinity among strings", []string{"inf", "male"}, series.String},
		{"empty", nil, series.Float},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferType(tt.values))
		})
	}
}

func TestNewFrame(t *testing.T) {
	df := mustFrame(t, manifest())

	assert.Equal(t, 8, df.Nrow())
	assert.Equal(t, manifestHeader, df.Names())
	assert.Equal(t, series.Int, df.Col("Age").Type())
	assert.Equal(t, series.Float, df.Col("Fare").Type())
	assert.Equal(t, series.String, df.Col("Ticket").Type())
	assert.True(t, df.Col("Age").Elem(5).IsNA())
	assert.True(t, df.Col("Cabin").Elem(0).IsNA())
}

func TestNewFrame_NonFiniteNumbersAreMissing(t *testing.T) {
	df := mustFrame(t, &domain.RawTable{
		Header: []string{"Age", "Fare", "Ticket"},
		Records: [][]string{
			{"22", "7.25", "A/5"},
			{"inf", "Inf", "inf"},
		},
	})

	assert.Equal(t, series.Int, df.Col("Age").Type())
	assert.Equal(t, series.Float, df.Col("Fare").Type())
	assert.True(t, df.Col("Age").Elem(1).IsNA())
	assert.True(t, df.Col("Fare").Elem(1).IsNA())
	assert.Equal(t, "inf", df.Col("Ticket").Elem(1).String())
}

func TestFinite(t *testing.T) {
	got := finite([]float64{1, math.NaN(), math.Inf(1), math.Inf(-1), 2})
	assert.Equal(t, []float64{1, 2}, got)
}

func TestNewFrame_Empty(t *testing.T) {
	_, err := newFrame(&domain.RawTable{})
	assert.True(t, errors.Is(err, domain.ErrEmptyDataset))

	df, err := newFrame(&domain.RawTable{Header: []string{"Survived", "Age"}})
	require.NoError(t, err)
	assert.Equal(t, 0, df.Nrow())
	assert.Equal(t, 2, df.Ncol())
}

func TestFloatColumn(t *testing.T) {
	df := mustFrame(t, manifest())

	ages, err := floatColumn(df, "Age")
	require.NoError(t, err)
	assert.Len(t, ages, 8)
	assert.Len(t, finite(ages), 7)

	_, err = floatColumn(df, "Deck")
	assert.True(t, errors.Is(err, domain.ErrMissingColumn))

	_, err = floatColumn(df, "Sex")
	assert.True(t, errors.Is(err, domain.ErrInvalidColumn))
}

func TestSampleRows(t *testing.T) {
	df := mustFrame(t, manifest())

	sample := sampleRows(df, 2)
	require.Len(t, sample.Rows, 2)
	assert.Equal(t, manifestHeader, sample.Columns)
	assert.Equal(t, []string{
		"1", "0", "3", "Braund, Mr. Owen Harris", "male", "22", "1", "0", "A/5 21171", "7.25", "NaN", "S",
	}, sample.Rows[0])

	assert.Len(t, sampleRows(df, 100).Rows, 8)
}

func TestOverview(t *testing.T) {
	df := mustFrame(t, manifest())

	ov := overview(df, 5)

	assert.Equal(t, 8, ov.Rows)
	assert.Len(t, ov.Sample.Rows, 5)
	require.Len(t, ov.Columns, 12)

	byName := map[string]domain.ColumnInfo{}
	for _, c := range ov.Columns {
		byName[c.Name] = c
	}
	assert.Equal(t, domain.ColumnInfo{Name: "Age", Type: "int", NonNull: 7, Missing: 1}, byName["Age"])
	assert.Equal(t, domain.ColumnInfo{Name: "Cabin", Type: "string", NonNull: 3, Missing: 5}, byName["Cabin"])
	assert.Equal(t, domain.ColumnInfo{Name: "Fare", Type: "float", NonNull: 8, Missing: 0}, byName["Fare"])
}

func TestOverview_Idempotent(t *testing.T) {
	df := mustFrame(t, manifest())

	first := overview(df, 5)
	second := overview(df, 5)

	assert.Equal(t, first, second)
}

func TestOverview_EmptyTable(t *testing.T) {
	df := mustFrame(t, &domain.RawTable{Header: []string{"Survived", "Sex"}})

	ov := overview(df, 5)

	assert.Equal(t, 0, ov.Rows)
	assert.Empty(t, ov.Sample.Rows)
	require.Len(t, ov.Columns, 2)
	assert.Equal(t, 0, ov.Columns[0].Missing)
}
