// Package domain defines the core business entities for Bindery.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Book: The canonical book representation every exporter consumes
//   - Chapter: An ordered unit of book content
//   - Format: The closed enumeration of export targets
//   - ExportOptions: Per-call rendering configuration
//   - ExportResult: The uniform success/failure/content envelope
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
