package services

import (
	"context"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

var manifestHeader = []string{
	"PassengerId", "Survived", "Pclass", "Name", "Sex", "Age",
	"SibSp", "Parch", "Ticket", "Fare", "Cabin", "Embarked",
}

// manifest returns the first rows of the passenger manifest, with one
// missing age and several missing cabins.
func manifest() *domain.RawTable {
	return &domain.RawTable{
		Header: append([]string(nil), manifestHeader...),
		Records: [][]string{
			{"1", "0", "3", "Braund, Mr. Owen Harris", "male", "22", "1", "0", "A/5 21171", "7.25", "", "S"},
			{"2", "1", "1", "Cumings, Mrs. John Bradley", "female", "38", "1", "0", "PC 17599", "71.2833", "C85", "C"},
			{"3", "1", "3", "Heikkinen, Miss. Laina", "female", "26", "0", "0", "STON/O2. 3101282", "7.925", "", "S"},
			{"4", "1", "1", "Futrelle, Mrs. Jacques Heath", "female", "35", "1", "0", "113803", "53.1", "C123", "S"},
			{"5", "0", "3", "Allen, Mr. William Henry", "male", "35", "0", "0", "373450", "8.05", "", "S"},
			{"6", "0", "3", "Moran, Mr. James", "male", "", "0", "0", "330877", "8.4583", "", "Q"},
			{"7", "0", "1", "McCarthy, Mr. Timothy J", "male", "54", "0", "0", "17463", "51.8625", "E46", "S"},
			{"8", "0", "3", "Palsson, Master. Gosta Leonard", "male", "2", "3", "1", "349909", "21.075", "", "S"},
		},
	}
}

// twoPassengers is the minimal table of one male non-survivor and one
// female survivor.
func twoPassengers() *domain.RawTable {
	return &domain.RawTable{
		Header: []string{"Survived", "Pclass", "Sex", "Age", "Fare"},
		Records: [][]string{
			{"0", "3", "male", "30", "10"},
			{"1", "1", "female", "25", "50"},
		},
	}
}

func mustFrame(t *testing.T, tbl *domain.RawTable) dataframe.DataFrame {
	t.Helper()
	df, err := newFrame(tbl)
	require.NoError(t, err)
	return df
}

// mockDatasetSource implements driven.DatasetSource for testing.
type mockDatasetSource struct {
	LoadFunc func(ctx context.Context) (*domain.RawTable, error)
	loads    int
}

func (m *mockDatasetSource) Format() string   { return "csv" }
func (m *mockDatasetSource) Location() string { return "testdata/titanic.csv" }

func (m *mockDatasetSource) Load(ctx context.Context) (*domain.RawTable, error) {
	m.loads++
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return manifest(), nil
}
