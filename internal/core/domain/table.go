package domain

import (
	"fmt"
	"strings"
)

// Column names of the passenger manifest.
const (
	ColumnPassengerID = "PassengerId"
	ColumnSurvived    = "Survived"
	ColumnPclass      = "Pclass"
	ColumnName        = "Name"
	ColumnSex         = "Sex"
	ColumnAge         = "Age"
	ColumnSibSp       = "SibSp"
	ColumnParch       = "Parch"
	ColumnTicket      = "Ticket"
	ColumnFare        = "Fare"
	ColumnCabin       = "Cabin"
	ColumnEmbarked    = "Embarked"

	// ColumnGender replaces Sex after cleaning.
	ColumnGender = "Gender"
)

// RequiredColumns are the columns every section relies on between them.
// A dataset lacking any of them is rejected at load time.
var RequiredColumns = []string{
	ColumnSurvived,
	ColumnPclass,
	ColumnSex,
	ColumnAge,
	ColumnFare,
}

// RawTable is a dataset as read from its source: a header row and string
// records. Cell values are untyped; type inference happens in the pipeline.
type RawTable struct {
	// Header holds the column names in file order.
	Header []string

	// Records holds the data rows. After Normalise every row has
	// exactly len(Header) cells.
	Records [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *RawTable) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn returns true if the header contains the named column.
func (t *RawTable) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Rows returns the number of data rows.
func (t *RawTable) Rows() int {
	return len(t.Records)
}

// Normalise trims header names, pads short rows with empty cells and
// rejects rows wider than the header or a header with duplicate names.
func (t *RawTable) Normalise() error {
	if len(t.Header) == 0 {
		return ErrEmptyDataset
	}
	seen := make(map[string]bool, len(t.Header))
	for i, h := range t.Header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			return fmt.Errorf("%w: empty column name at position %d", ErrInvalidInput, i+1)
		}
		if seen[h] {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidInput, h)
		}
		seen[h] = true
		t.Header[i] = h
	}
	width := len(t.Header)
	for i, rec := range t.Records {
		switch {
		case len(rec) > width:
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrInvalidInput, i+1, len(rec), width)
		case len(rec) < width:
			padded := make([]string, width)
			copy(padded, rec)
			t.Records[i] = padded
		}
	}
	return nil
}

// RequireColumns returns ErrMissingColumn naming every absent column.
func (t *RawTable) RequireColumns(names ...string) error {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}
