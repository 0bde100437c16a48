// Package dataset provides driven.DatasetSource adapters that read the
// passenger manifest from disk.
//
// Adapters:
//   - CSVSource: comma or tab separated text (encoding/csv)
//   - XLSXSource: Excel workbooks (excelize)
//
// Factory picks a source from the file extension.
package dataset
