package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driven"
	"github.com/custodia-labs/titanic-cli/internal/logger"
)

// Ensure CSVSource implements the interface.
var _ driven.DatasetSource = (*CSVSource)(nil)

// ctxCheckEvery is how many rows are read between cancellation checks.
const ctxCheckEvery = 512

// CSVSource reads a delimited text file with a header row.
type CSVSource struct {
	path  string
	comma rune
}

// NewCSVSource creates a comma separated source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path, comma: ','}
}

// NewTSVSource creates a tab separated source.
func NewTSVSource(path string) *CSVSource {
	return &CSVSource{path: path, comma: '\t'}
}

// Format returns "csv" or "tsv".
func (s *CSVSource) Format() string {
	if s.comma == '\t' {
		return "tsv"
	}
	return "csv"
}

// Location returns the file path.
func (s *CSVSource) Location() string {
	return s.path
}

// Load reads the whole file.
func (s *CSVSource) Load(ctx context.Context) (*domain.RawTable, error) {
	defer logger.Timed("read " + s.path)()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, s.path)
		}
		return nil, err
	}
	defer f.Close()

	return readDelimited(ctx, f, s.comma)
}

func readDelimited(ctx context.Context, r io.Reader, comma rune) (*domain.RawTable, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyDataset
		}
		return nil, fmt.Errorf("%w: header: %w", domain.ErrInvalidInput, err)
	}

	tbl := &domain.RawTable{Header: header}
	for {
		if len(tbl.Records)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		if len(rec) == 1 && rec[0] == "" {
			continue
		}
		tbl.Records = append(tbl.Records, rec)
	}

	if err := tbl.Normalise(); err != nil {
		return nil, err
	}
	logger.Debug("Read %d rows, %d columns", len(tbl.Records), len(tbl.Header))
	return tbl, nil
}
