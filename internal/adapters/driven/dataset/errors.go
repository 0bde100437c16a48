package dataset

import "errors"

// Dataset adapter errors.
var (
	// ErrUnsupportedFormat indicates the file extension has no source.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")

	// ErrSheetNotFound indicates the configured worksheet is absent.
	ErrSheetNotFound = errors.New("dataset: worksheet not found")
)
