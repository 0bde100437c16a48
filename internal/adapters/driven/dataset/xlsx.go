package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driven"
	"github.com/custodia-labs/titanic-cli/internal/logger"
)

// Ensure XLSXSource implements the interface.
var _ driven.DatasetSource = (*XLSXSource)(nil)

// XLSXSource reads one worksheet of an Excel workbook. The first
// non-empty row is the header.
type XLSXSource struct {
	path  string
	sheet string
}

// NewXLSXSource creates a workbook source. An empty sheet selects the
// first worksheet.
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

// Format returns "xlsx".
func (s *XLSXSource) Format() string {
	return "xlsx"
}

// Location returns the file path, with the sheet when one is configured.
func (s *XLSXSource) Location() string {
	if s.sheet == "" {
		return s.path
	}
	return s.path + "#" + s.sheet
}

// Load reads the worksheet.
func (s *XLSXSource) Load(ctx context.Context) (*domain.RawTable, error) {
	defer logger.Timed("read " + s.Location())()

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, s.path)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", domain.ErrInvalidInput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("closing %s: %v", s.path, cerr)
		}
	}()

	sheets := f.GetSheetList()
	sheet := s.sheet
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, domain.ErrEmptyDataset
		}
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrSheetNotFound, sheet, sheets)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", domain.ErrInvalidInput, sheet, err)
	}

	// GetRows trims trailing empty cells and may return blank rows.
	var tbl domain.RawTable
	for _, row := range rows {
		if blank(row) {
			continue
		}
		if tbl.Header == nil {
			tbl.Header = row
			continue
		}
		tbl.Records = append(tbl.Records, row)
	}
	if tbl.Header == nil {
		return nil, domain.ErrEmptyDataset
	}

	if err := tbl.Normalise(); err != nil {
		return nil, err
	}
	logger.Debug("Read %d rows, %d columns from sheet %q", len(tbl.Records), len(tbl.Header), sheet)
	return &tbl, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
