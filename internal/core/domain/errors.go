package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrDatasetNotFound indicates the dataset file does not exist.
	// It is fatal at startup.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMissingColumn indicates a column required by a transform is absent.
	// It fails only the render pass that needed the column.
	ErrMissingColumn = errors.New("missing column")

	// ErrEmptyDataset indicates the dataset has no header row.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrUnknownSection indicates a section label or slug was not recognised.
	ErrUnknownSection = errors.New("unknown section")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidColumn indicates a column holds values of the wrong kind,
	// for example a non-numeric Survived column.
	ErrInvalidColumn = errors.New("invalid column")
)
