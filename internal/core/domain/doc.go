// Package domain defines the core business entities for the Titanic dashboard.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Section: one of the five dashboard sections
//   - RawTable: header and string records as read from a dataset source
//   - AgeGroup: the fixed age buckets used by the additional analysis
//   - Metric: a statistic that may be undefined
//   - SectionResult: the output of a single render pass
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
